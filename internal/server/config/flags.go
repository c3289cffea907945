package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/staffql/internal/flagx"
)

var knownFlags = []string{"-a", "-g", "-d", "-s", "-t", "-u", "-p", "-b", "-r", "-e", "-l", "-m"}

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":4000")
//	-g string     gRPC bind address (e.g., ":50051")
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-t duration   token validity (e.g., "168h")
//	-u string     S3 access key
//	-p string     S3 secret key
//	-b string     S3 bucket name
//	-r string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000")
//	-l string     public base URL of uploaded objects
//	-m string     environment (local, development, production)
//
// os.Args is filtered with flagx.FilterArgs first so that -c/-config and
// flags owned by other components do not break parsing.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to serve GraphQL on")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to serve gRPC health on")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3PublicURL, "l", config.S3PublicURL, "public URL of uploaded objects")
	fs.StringVar(&config.Env, "m", config.Env, "environment")

	return fs.Parse(args)
}
