package config

type config struct {
	Server server `yaml:"server" mapstructure:"server"`
	Mysql  mysql  `yaml:"mysql" mapstructure:"mysql"`
	Redis  redis  `yaml:"redis" mapstructure:"redis"`
	Minio  minio  `yaml:"minio" mapstructure:"minio"`
	Jwt    jwt    `yaml:"jwt" mapstructure:"jwt"`
}

type server struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type minio struct {
	Endpoint    string `yaml:"endpoint"`
	AccessKey   string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey   string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL      bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	VideoBucket string `yaml:"video_bucket" mapstructure:"video_bucket"`
	ImageBucket string `yaml:"image_bucket" mapstructure:"image_bucket"`
	PublicBase  string `yaml:"public_base" mapstructure:"public_base"`
}

type jwt struct {
	Secret           string `yaml:"secret"`
	AccessExpireMin  int    `yaml:"access_expire_min" mapstructure:"access_expire_min"`
	RefreshExpireDay int    `yaml:"refresh_expire_day" mapstructure:"refresh_expire_day"`
}
