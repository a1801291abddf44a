package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-vault encrypted server settings file
//	-d history database DSN
//	-c/-config json file path with configs
//	-known-hosts known_hosts file for host key verification
//	-connect-timeout SSH dial and handshake timeout (e.g., "10s")
//	-poll-interval reader poll interval (e.g., "100ms")
//	-history-limit number of commands preloaded on connect
//	-term PTY terminal type
//	-persist-history save submitted commands to the history database
//	-log client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	var vaultPath string
	var databaseDSN string
	var jsonConfigPath string
	var knownHosts string
	var connectTimeout time.Duration
	var pollInterval time.Duration
	var historyLimit int
	var termType string
	var persistHistory bool
	var logFile string

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.StringVar(&vaultPath, "vault", "", "Encrypted server settings file")
	fs.StringVar(&databaseDSN, "d", "", "History database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&knownHosts, "known-hosts", "", "known_hosts file for host key verification")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "SSH connect timeout (e.g., 10s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Reader poll interval (e.g., 100ms)")
	fs.IntVar(&historyLimit, "history-limit", 0, "Commands preloaded on connect")
	fs.StringVar(&termType, "term", "", "PTY terminal type")
	fs.BoolVar(&persistHistory, "persist-history", false, "Save submitted commands to the history database")
	fs.StringVar(&logFile, "log", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Vault: Vault{
			FilePath: vaultPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Shell: Shell{
			PollInterval:   pollInterval,
			HistoryLimit:   historyLimit,
			TermType:       termType,
			PersistHistory: persistHistory,
		},
		Adapter: Adapter{
			ConnectTimeout: connectTimeout,
			KnownHostsPath: knownHosts,
		},
		Log: Log{
			FilePath: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
