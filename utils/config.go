package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Namespace pairs a namespace index with the URI it stands for, so a
// config file can pre-seed an EncodingContext's namespace table the same
// way the teacher's config pre-seeds simulator parameters.
type Namespace struct {
	Index uint16 `mapstructure:"Index"`
	URI   string `mapstructure:"URI"`
}

// Server pairs a server index with the URI of the server it refers to,
// for pre-seeding an EncodingContext's server table.
type Server struct {
	Index uint32 `mapstructure:"Index"`
	URI   string `mapstructure:"URI"`
}

// Config holds everything the CLI needs to build an EncodingContext and
// choose an encoding mode before it touches its input.
type Config struct {
	Reversible        bool        `mapstructure:"REVERSIBLE"`
	Namespaces        []Namespace `mapstructure:"NAMESPACES"`
	Servers           []Server    `mapstructure:"SERVERS"`
	MaxStringLength   int         `mapstructure:"MAX_STRING_LENGTH"`
	MaxArrayLength    int         `mapstructure:"MAX_ARRAY_LENGTH"`
	MaxRecursionDepth int         `mapstructure:"MAX_RECURSION_DEPTH"`
	ValidateBodies    bool        `mapstructure:"VALIDATE_EXTENSION_OBJECT_BODIES"`
	BatchWorkers      int         `mapstructure:"BATCH_WORKERS"`
}

// GetConfig loads ./configs/config.json via viper, falling back to
// defaults when no config file is present.
func GetConfig() Config {
	v := viper.New()
	var config Config

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println(Colorize("Config file not found! using default configs..", Yellow))
			setDefault(v)
		} else {
			log.Println(Colorize("Config file was found but another error was produced : ", Red))
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	} else {
		log.Println(Colorize("Config file found and successfully parsed", Green))
	}

	err := v.Unmarshal(&config)
	if err != nil {
		panic(fmt.Errorf("unable to decode into struct %w", err))
	}

	return config
}

func setDefault(v *viper.Viper) {
	v.SetDefault("REVERSIBLE", true)
	v.SetDefault("NAMESPACES", []Namespace{})
	v.SetDefault("SERVERS", []Server{})
	v.SetDefault("MAX_STRING_LENGTH", 65536)
	v.SetDefault("MAX_ARRAY_LENGTH", 0)
	v.SetDefault("MAX_RECURSION_DEPTH", 100)
	v.SetDefault("VALIDATE_EXTENSION_OBJECT_BODIES", false)
	v.SetDefault("BATCH_WORKERS", 4)
}

// Foreground colors.
const (
	Black uint8 = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Colorize colorizes a string by a given color.
func Colorize(s string, c uint8) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, s)
}
