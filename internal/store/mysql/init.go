package mysql

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"arealookup/internal/store"
	"arealookup/pkg/storage"
)

// NewMysqlClient init database from the loaded config
func NewMysqlClient(ctx context.Context) (*DataStore, error) {
	db, err := storage.Connect(ctx, viper.GetUint64("mysql.connect_retries"), options()...)
	if err != nil {
		return nil, err
	}
	return NewDataStore(db), nil
}

// options maps the mysql.* keys onto the pool options
func options() []storage.Option {
	return []storage.Option{
		storage.WithDebug(viper.GetString("mode") != gin.ReleaseMode),
		storage.WithUser(viper.GetString("mysql.user")),
		storage.WithPassword(viper.GetString("mysql.password")),
		storage.WithIP(viper.GetString("mysql.ip")),
		storage.WithPort(viper.GetString("mysql.port")),
		storage.WithDatabase(viper.GetString("mysql.name")),
		storage.WithCharset(viper.GetString("mysql.charset")),
		storage.WithMaxOpenConn(viper.GetInt("mysql.max_open_conns")),
		storage.WithMaxIdleConn(viper.GetInt("mysql.max_idle_conns")),
		storage.WithMaxLifetime(viper.GetDuration("mysql.conn_max_lifetime")),
		storage.WithTimeout(viper.GetDuration("mysql.timeout")),
		storage.WithReadTimeout(viper.GetDuration("mysql.read_timeout")),
		storage.WithWriteTimeout(viper.GetDuration("mysql.write_timeout")),
		storage.WithQueryTimeout(viper.GetDuration("mysql.query_timeout")),
	}
}

func init() {
	viper.SetDefault("mysql.ip", "127.0.0.1")
	viper.SetDefault("mysql.port", "3306")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("mysql.max_open_conns", 100)
	viper.SetDefault("mysql.max_idle_conns", 10)
	viper.SetDefault("mysql.conn_max_lifetime", time.Hour)
	viper.SetDefault("mysql.connect_retries", 5)
}

func NewDataStore(db *storage.DB) *DataStore {
	return &DataStore{DB: db}
}

// DataStore implements store.Store on mysql
type DataStore struct {
	DB *storage.DB
}

func (d *DataStore) Area() store.AreaStore {
	return newArea(d.DB)
}
