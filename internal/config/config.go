package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// envPattern находит ссылки на переменные окружения формата ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults расширяет переменные окружения с поддержкой дефолтных значений
func expandEnvWithDefaults(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		defaultValue := ""
		if len(matches) > 2 {
			defaultValue = matches[2]
		}

		// Пустая переменная считается незаданной
		if value := os.Getenv(matches[1]); value != "" {
			return value
		}
		return defaultValue
	})
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации.
// defaults задают значения ключей, отсутствующих в файле
func InitConfig[C any](configFile string, defaults map[string]any) (*C, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	ext := strings.TrimLeft(filepath.Ext(configFile), ".")
	v.SetConfigFile(configFile)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}

	// Заменяем переменные окружения формата ${VAR:-default} на их значения
	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if !strings.Contains(value, "${") {
			continue
		}
		expanded := expandEnvWithDefaults(value)

		// Значения, похожие на число или boolean, сохраняем с правильным типом
		if expanded == "true" || expanded == "false" {
			boolValue, _ := strconv.ParseBool(expanded)
			v.Set(k, boolValue)
		} else if intValue, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, intValue)
		} else {
			v.Set(k, expanded)
		}
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}

// Load читает конфигурацию бота с дефолтными значениями
func Load(configFile string) (*Config, error) {
	return InitConfig[Config](configFile, Defaults())
}
