package main

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/codahale/sakura"
)

const envPrefix = "SAKURASUM"

// Flag names, which double as config file keys.
const (
	flagConfig        = "config"
	flagAlgorithm     = "algorithm"
	flagLength        = "length"
	flagFunctionName  = "function-name"
	flagCustomization = "customization"
	flagKey           = "key"
	flagBlockSize     = "block-size"
	flagDomain        = "domain"
	flagLogLevel      = "log-level"
	flagList          = "list"
)

type config struct {
	Algorithm sakura.Algorithm
	Options   sakura.Options
	LogLevel  string
	List      bool
}

func setupFlags(fs *pflag.FlagSet) {
	fs.String(flagConfig, "", "config file (YAML or TOML)")
	fs.StringP(flagAlgorithm, "a", string(sakura.SHA3_256), "digest algorithm (see --list)")
	fs.IntP(flagLength, "l", 0, "digest length in bytes; XOFs, KMAC, and ParallelHash only (0 selects the default)")
	fs.String(flagFunctionName, "", "cSHAKE function name")
	fs.StringP(flagCustomization, "c", "", "customization string (cSHAKE, KMAC, ParallelHash, KT128)")
	fs.StringP(flagKey, "k", "", "hex-encoded key (KMAC, TreeMAC)")
	fs.Int(flagBlockSize, sakura.DefaultBlockSize, "ParallelHash block size in bytes")
	fs.Uint8(flagDomain, 0x1F, "TurboSHAKE domain separation byte")
	fs.String(flagLogLevel, "warn", "log level (debug, info, warn, error)")
	fs.Bool(flagList, false, "list the supported algorithms and exit")
}

// loadConfig layers the config file and the environment under the command-line flags.
func loadConfig(fs *pflag.FlagSet) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	alg, err := sakura.ParseAlgorithm(v.GetString(flagAlgorithm))
	if err != nil {
		return nil, err
	}

	key, err := hex.DecodeString(v.GetString(flagKey))
	if err != nil {
		return nil, errors.Wrap(err, "decoding key")
	}

	domain := v.GetUint(flagDomain)
	if domain > 0xFF {
		return nil, errors.Errorf("invalid domain separation byte %#x", domain)
	}

	return &config{
		Algorithm: alg,
		Options: sakura.Options{
			Size:          v.GetInt(flagLength),
			FunctionName:  []byte(v.GetString(flagFunctionName)),
			Customization: []byte(v.GetString(flagCustomization)),
			Key:           key,
			BlockSize:     v.GetInt(flagBlockSize),
			Domain:        byte(domain),
		},
		LogLevel: v.GetString(flagLogLevel),
		List:     v.GetBool(flagList),
	}, nil
}
