package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-f uploads directory
//	-d database DSN
//	-db-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-encryption-key PII encryption secret
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-size largest accepted document in bytes
//	-gcs-bucket uploads bucket
//	-firestore-project firestore project id
//	-vertex-project vertex ai project id
//	-vertex-location vertex ai location
//	-fraud-model-url external fraud model endpoint
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var uploadsDir string
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var encryptionKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var maxUploadSize int64
	var gcsBucket string
	var firestoreProject string
	var vertexProject, vertexLocation string
	var fraudModelURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&uploadsDir, "f", "", "Uploads directory")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&encryptionKey, "encryption-key", "", "PII encryption secret")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Int64Var(&maxUploadSize, "max-upload-size", 0, "Largest accepted document in bytes")
	flag.StringVar(&gcsBucket, "gcs-bucket", "", "GCS uploads bucket")
	flag.StringVar(&firestoreProject, "firestore-project", "", "Firestore project id")
	flag.StringVar(&vertexProject, "vertex-project", "", "Vertex AI project id")
	flag.StringVar(&vertexLocation, "vertex-location", "", "Vertex AI location")
	flag.StringVar(&fraudModelURL, "fraud-model-url", "", "External fraud model endpoint")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			EncryptionKey: encryptionKey,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				UploadsDir: uploadsDir,
			},
			GCS: GCS{
				Bucket: gcsBucket,
			},
			Firestore: Firestore{
				ProjectID: firestoreProject,
			},
		},
		Providers: Providers{
			Vertex: Vertex{
				ProjectID: vertexProject,
				Location:  vertexLocation,
			},
			FraudModel: FraudModel{
				Enabled: fraudModelURL != "",
				URL:     fraudModelURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
