package cmd

// Config carries everything the process needs from the environment. Redis is
// optional: an empty RedisAddr disables the dashboard summary cache.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	RedisAddr       string
	RedisPassword   string
	SummaryCacheTTL string
}
