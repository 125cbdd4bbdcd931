package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKey string            `json:"encryption_key"`
		TokenSignKey  string            `json:"token_sign_key"`
		TokenIssuer   string            `json:"token_issuer"`
		TokenDuration Duration          `json:"token_duration"`
		Users         map[string]string `json:"users,omitempty"`
		Admins        []string          `json:"admins,omitempty"`
		Version       string            `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			UploadsDir string `json:"uploads_dir"`
		} `json:"files,omitempty"`

		GCS struct {
			Bucket string `json:"bucket"`
		} `json:"gcs,omitempty"`

		Firestore struct {
			ProjectID  string `json:"project_id"`
			Collection string `json:"collection"`
		} `json:"firestore,omitempty"`
	} `json:"storage,omitempty"`

	Providers struct {
		Vertex struct {
			ProjectID string   `json:"project_id"`
			Location  string   `json:"location"`
			Model     string   `json:"model"`
			Timeout   Duration `json:"timeout"`
		} `json:"vertex,omitempty"`

		OCR struct {
			MinConfidence float64 `json:"min_confidence"`
		} `json:"ocr,omitempty"`

		Quality struct {
			BlurThreshold float64 `json:"blur_threshold"`
			MinBrightness float64 `json:"min_brightness"`
			MaxBrightness float64 `json:"max_brightness"`
		} `json:"quality,omitempty"`

		FraudModel struct {
			Enabled bool     `json:"enabled"`
			URL     string   `json:"url"`
			Timeout Duration `json:"timeout"`
		} `json:"fraud_model,omitempty"`
	} `json:"providers,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	app, storage, providers, server := jsonCfg.App, jsonCfg.Storage, jsonCfg.Providers, jsonCfg.Server
	cfg := &StructuredConfig{
		App: App{
			EncryptionKey: app.EncryptionKey,
			TokenSignKey:  app.TokenSignKey,
			TokenIssuer:   app.TokenIssuer,
			TokenDuration: time.Duration(app.TokenDuration),
			Users:         app.Users,
			Admins:        app.Admins,
			Version:       app.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: storage.DB.Driver,
				DSN:    storage.DB.DSN,
			},
			Files: Files{
				UploadsDir: storage.Files.UploadsDir,
			},
			GCS: GCS{
				Bucket: storage.GCS.Bucket,
			},
			Firestore: Firestore{
				ProjectID:  storage.Firestore.ProjectID,
				Collection: storage.Firestore.Collection,
			},
		},
		Providers: Providers{
			Vertex: Vertex{
				ProjectID: providers.Vertex.ProjectID,
				Location:  providers.Vertex.Location,
				Model:     providers.Vertex.Model,
				Timeout:   time.Duration(providers.Vertex.Timeout),
			},
			OCR: OCR{
				MinConfidence: providers.OCR.MinConfidence,
			},
			Quality: Quality{
				BlurThreshold: providers.Quality.BlurThreshold,
				MinBrightness: providers.Quality.MinBrightness,
				MaxBrightness: providers.Quality.MaxBrightness,
			},
			FraudModel: FraudModel{
				Enabled: providers.FraudModel.Enabled,
				URL:     providers.FraudModel.URL,
				Timeout: time.Duration(providers.FraudModel.Timeout),
			},
		},
		Server: Server{
			HTTPAddress:    server.HTTPAddress,
			GRPCAddress:    server.GRPCAddress,
			RequestTimeout: time.Duration(server.RequestTimeout),
			MaxUploadSize:  server.MaxUploadSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
