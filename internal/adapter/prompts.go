package adapter

// System instruction shared by every document inspection call.
const visionSystemPrompt = "You are a forensic document inspector for identity documents. " +
	"You answer only with a single valid JSON object and never include commentary."

const faceDetectionPrompt = `Find every human face in the provided identity document image.

Return a JSON object of the form:
{"faces": [{"confidence": <number 0-100>}]}

Rules:
1. Add one entry per distinct face, including small printed portraits and ghost images.
2. "confidence" is your certainty in percent that the region is a human face.
3. If there are no faces return {"faces": []}.`

const moderationPrompt = `Inspect the provided identity document image for content that should not be on a genuine document and for signs of digital manipulation.

Return a JSON object of the form:
{"labels": [{"name": "<label>", "confidence": <number 0-100>}], "manipulated": <true|false>}

Rules:
1. "labels" lists suspicious or unsafe content (for example: explicit content, violence, drawn-over text, pasted photo, screen capture, printed copy).
2. "manipulated" is true only when you see concrete evidence of editing such as mismatched fonts, cloned areas or inconsistent edges.
3. If nothing is suspicious return {"labels": [], "manipulated": false}.`

const textDetectionPrompt = `Transcribe every line of printed text in the provided identity document image.

Return a JSON object of the form:
{"lines": [{"text": "<line>", "confidence": <number 0-100>}]}

Rules:
1. Keep the natural reading order, top to bottom and left to right.
2. Emit one entry per visual line. Do not merge label and value lines.
3. Copy characters exactly as printed; do not translate, correct or reformat.
4. "confidence" is your certainty in percent for the whole line.`
