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

// ParseFlags parses daemon configuration flags from args (without the
// program name).
//
// Flags:
//
//	-a daemon address in format [host]:[port]
//	-driver database driver, sqlite or postgres
//	-d database DSN
//	-p preference file path
//	-c/-config json file path with configs
//	-device-id device identifier mixed into the master password hash
//	-salted-hash use the device-salted master password hash
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "15m")
//	-session-idle idle timeout of daemon sessions (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-kdf-iterations PBKDF2 iteration count
//	-redact-key zero the key region of stored cipher contexts
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("notesd", flag.ContinueOnError)

	var serverAddress NetAddress
	var driver, databaseDSN, preferencesFile, jsonConfigPath string
	var deviceID, tokenSignKey, tokenIssuer string
	var saltedHash, redactKey bool
	var tokenDuration, sessionIdle, requestTimeout time.Duration
	var kdfIterations int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&driver, "driver", "", "Database driver: sqlite or postgres")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&preferencesFile, "p", "", "Preference file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&deviceID, "device-id", "", "Device identifier")
	fs.BoolVar(&saltedHash, "salted-hash", false, "Use the device-salted master password hash")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 15m)")
	fs.DurationVar(&sessionIdle, "session-idle", 0, "Session idle timeout (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.BoolVar(&redactKey, "redact-key", false, "Zero the key region of stored cipher contexts")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			DeviceID:           deviceID,
			SaltedPasswordHash: saltedHash,
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			SessionIdleTimeout: sessionIdle,
		},
		Crypto: Crypto{
			KDFIterations:   kdfIterations,
			RedactStoredKey: redactKey,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Preferences: Preferences{
				File: preferencesFile,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
