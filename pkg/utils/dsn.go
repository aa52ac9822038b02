package utils

import (
	"strings"

	"videotube/config"
)

// GetMysqlDsn builds the MySQL DSN from the loaded config.
func GetMysqlDsn() string {
	conf := config.ConfigInfo.Mysql
	return strings.Join([]string{
		conf.Username, ":", conf.Password, "@tcp(", conf.Addr, ")/", conf.Database,
		"?charset=", conf.Charset, "&parseTime=True&loc=Local",
	}, "")
}
