package core

// OverrideCredential is the out-of-band admin secret that bypasses
// per-record passwords. It is a distinct type so the two authorization
// paths never get conflated.
type OverrideCredential string

// Config is sourced from the environment at startup.
type Config struct {
	BotToken      string `env:"DISCORD_TOKEN,required"`
	AppID         string `env:"DISCORD_APP_ID,required"`
	GuildID       string `env:"DISCORD_GUILD_ID"`
	Dsn           string `env:"DATABASE_DSN,required"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	MemcachedAddr string `env:"MEMCACHED_ADDR" envDefault:"localhost:11211"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`
	Port          string `env:"PORT" envDefault:"8000"`
	ListURL       string `env:"CHARACTER_LIST_URL" envDefault:"/"`
	EnableTrace   bool   `env:"ENABLE_TRACE"`
	TraceEndpoint string `env:"TRACE_ENDPOINT"`
}
