package pkgconfig

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by github.com/spf13/viper.
//
// Every key can be overridden through the environment with dots replaced
// by underscores: "modules.sheet.upload_dir" reads MODULES_SHEET_UPLOAD_DIR
// first. Environment values win over file values.
type Viper struct {
	v *viper.Viper
}

// NewViper loads the config file at pathFile and starts watching it for
// changes. The file type is inferred from the filename extension.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()

	base := filepath.Base(pathFile)
	v.AddConfigPath(filepath.Dir(pathFile))
	v.SetConfigName(strings.TrimSuffix(base, filepath.Ext(base)))

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.WatchConfig()

	return &Viper{v: v}, nil
}

// GetString returns the value for key as a string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetInt returns the value for key as an int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as a bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetDuration returns the value for key parsed as a time.Duration.
func (vc *Viper) GetDuration(key string) time.Duration {
	return vc.v.GetDuration(key)
}

// Close implements io.Closer. The file watcher needs no explicit teardown.
func (vc *Viper) Close() error {
	return nil
}
