package config

// Config holds API server configuration.
type Config struct {
	Addr        string `env:"API_ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"yfp-ex"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"yml-feed-parser.commands"`
}
