package models

// Config holds all application configuration, built once at startup and
// passed explicitly into constructors.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	OTP      OTPConfig
	SMTP     SMTPConfig
	Logger   LoggerConfig
}

// AppConfig represents application metadata configuration
type AppConfig struct {
	Name        string `json:"name" mapstructure:"name"`
	Environment string `json:"environment" mapstructure:"environment"`
	Debug       bool   `json:"debug" mapstructure:"debug"`
	Version     string `json:"version" mapstructure:"version"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host" mapstructure:"host"`
	Port            int    `json:"port" mapstructure:"port"`
	ReadTimeout     int    `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// DatabaseConfig represents PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host" mapstructure:"host"`
	Port      int    `json:"port" mapstructure:"port"`
	Username  string `json:"username" mapstructure:"username"`
	Password  string `json:"password" mapstructure:"password"`
	Database  string `json:"database" mapstructure:"database"`
	SSLMode   string `json:"ssl_mode" mapstructure:"ssl_mode"`
	MaxConns  int    `json:"max_conns" mapstructure:"max_conns"`
	IdleConns int    `json:"idle_conns" mapstructure:"idle_conns"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
	PoolSize int    `json:"pool_size" mapstructure:"pool_size"`
}

// JWTConfig represents JWT token configuration
type JWTConfig struct {
	Secret     string `json:"secret" mapstructure:"secret"`
	Expiration int    `json:"expiration" mapstructure:"expiration"` // minutes
	Issuer     string `json:"issuer" mapstructure:"issuer"`
}

// OTPConfig represents one-time password configuration
type OTPConfig struct {
	Expiration int `json:"expiration" mapstructure:"expiration"` // minutes
}

// SMTPConfig represents the outbound mail channel configuration
type SMTPConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	From     string `json:"from" mapstructure:"from"`
}

// LoggerConfig represents logger configuration
type LoggerConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}
