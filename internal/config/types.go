package config

type Credentials struct {
	User     string
	Password string
}

type Host struct {
	Hostname string
	Port     string
}

type HTTPGet struct {
	Scheme  string
	Host    `hcl:",squash"`
	Method  string
	Path    string
	Timeout string
}

type MySQL struct {
	Credentials `hcl:",squash"`
	Host        `hcl:",squash"`
	Database    string
}

type Redis struct {
	Host     `hcl:",squash"`
	Password string
}

type MongoDB struct {
	Credentials `hcl:",squash"`
	Host        `hcl:",squash"`
	Database    string
}

type Amqp struct {
	Credentials `hcl:",squash"`
	Host        `hcl:",squash"`
	VirtualHost string
}

type SMTP struct {
	Host `hcl:",squash"`
}

// Target describes one monitored application. Exactly one of the probe kind
// fields should be set; targets are probed in declaration order.
type Target struct {
	Name       string `hcl:",key"`
	Filesystem string
	HTTP       *HTTPGet
	Redis      *Redis
	MySQL      *MySQL
	MongoDB    *MongoDB
	Amqp       *Amqp
	SMTP       *SMTP
}

type Watch struct {
	Interval string `hcl:"interval"`
}

type Config struct {
	Watch   *Watch   `hcl:"watch"`
	Targets []Target `hcl:"target"`
}
