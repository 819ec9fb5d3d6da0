package conf

import (
	"log"

	"github.com/spf13/viper"
)

// Args Global Application Arguments
var Args Arguments

var vp *viper.Viper

// Arguments arguments struct type
type Arguments struct {
	Logging struct {
		LogLevel    string `mapstructure:"log_level"`
		LogFilePath string `mapstructure:"log_file_path"`
	}

	Network struct {
		DefaultUserAgent string `mapstructure:"default_user_agent"`
		HTTPTimeout      int    `mapstructure:"http_timeout"`
	}

	Output struct {
		Directory  string `mapstructure:"directory"`
		FileSuffix string `mapstructure:"file_suffix"`
	}

	Sound struct {
		Enabled bool   `mapstructure:"enabled"`
		File    string `mapstructure:"file"`
	}
}

func init() {
	vp = viper.New()
	setDefaults()
	vp.SetConfigName("proxylistgen") // name of config file (without extension)
	vp.AddConfigPath(".")            // optionally look for config in the working directory
	err := vp.ReadInConfig()
	if err != nil {
		// the program runs with zero configuration; only a malformed
		// config file is worth stopping for
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Panicf("config file error: %+v", err)
		}
	}
	err = vp.Unmarshal(&Args)
	if err != nil {
		log.Panicf("config file error: %+v", err)
	}
}

func setDefaults() {
	vp.SetDefault("logging.log_level", "info")
	vp.SetDefault("logging.log_file_path", "Logs/proxylistgen.log")
	vp.SetDefault("network.default_user_agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) "+
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	vp.SetDefault("network.http_timeout", 10)
	vp.SetDefault("output.directory", "Proxies_List")
	vp.SetDefault("output.file_suffix", "proxies.txt")
	vp.SetDefault("sound.enabled", true)
	vp.SetDefault("sound.file", ".assets/Sounds/NotificationSound.wav")
}

// ConfigFileUsed returns the file used to populate the config registry.
func ConfigFileUsed() string {
	return vp.ConfigFileUsed()
}
