package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Env    string `mapstructure:"env"`
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// ConfigBot тексты интерактивной сессии
type ConfigBot struct {
	Greeting string `mapstructure:"greeting"`
	Prompt   string `mapstructure:"prompt"`
	Farewell string `mapstructure:"farewell"`
}

// Config основная структура конфигурации
type Config struct {
	Logger *ConfigLogger `mapstructure:"logger"`
	Bot    *ConfigBot    `mapstructure:"bot"`
}

// Defaults значения по умолчанию для ключей конфигурации
func Defaults() map[string]any {
	return map[string]any{
		"logger.env":    "production",
		"logger.level":  "warn",
		"logger.output": "stderr",
		"bot.greeting":  "Welcome to the assistant bot!",
		"bot.prompt":    "Enter a command: ",
		"bot.farewell":  "Good bye!",
	}
}
