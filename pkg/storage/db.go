package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"arealookup/pkg/logger/gormx"
)

type option struct {
	maxOpenConn int
	maxIdleConn int

	user     string
	password string
	ip       string
	port     string
	database string
	charset  string

	timeout         time.Duration
	readTimeout     time.Duration
	writeTimeout    time.Duration
	connMaxLifetime time.Duration
	queryTimeout    time.Duration

	debug       bool
	prepareStmt bool
	conn        gorm.ConnPool
	logger      glogger.Interface
}

type Option func(*option)

func WithMaxOpenConn(maxOpenConn int) Option {
	return func(o *option) {
		o.maxOpenConn = maxOpenConn
	}
}

func WithMaxIdleConn(maxIdleConn int) Option {
	return func(o *option) {
		o.maxIdleConn = maxIdleConn
	}
}

func WithUser(user string) Option {
	return func(o *option) {
		o.user = user
	}
}

func WithPassword(password string) Option {
	return func(o *option) {
		o.password = password
	}
}

func WithIP(ip string) Option {
	return func(o *option) {
		o.ip = ip
	}
}

func WithPort(port string) Option {
	return func(o *option) {
		o.port = port
	}
}

func WithDatabase(db string) Option {
	return func(o *option) {
		o.database = db
	}
}

func WithCharset(charset string) Option {
	return func(o *option) {
		o.charset = charset
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *option) {
		o.timeout = timeout
	}
}

func WithReadTimeout(readTimeout time.Duration) Option {
	return func(o *option) {
		o.readTimeout = readTimeout
	}
}

func WithWriteTimeout(writeTimeout time.Duration) Option {
	return func(o *option) {
		o.writeTimeout = writeTimeout
	}
}

func WithMaxLifetime(connMaxLifetime time.Duration) Option {
	return func(o *option) {
		o.connMaxLifetime = connMaxLifetime
	}
}

// WithQueryTimeout bounds every statement issued through DB.With, 0 means no bound
func WithQueryTimeout(queryTimeout time.Duration) Option {
	return func(o *option) {
		o.queryTimeout = queryTimeout
	}
}

// WithDebug logs every statement at debug level
func WithDebug(debug bool) Option {
	return func(o *option) {
		o.debug = debug
	}
}

func WithPrepareStmt(prepareStmt bool) Option {
	return func(o *option) {
		o.prepareStmt = prepareStmt
	}
}

// WithConn uses an already opened connection instead of dialing the dsn
func WithConn(conn gorm.ConnPool) Option {
	return func(o *option) {
		o.conn = conn
	}
}

func WithLogger(logger glogger.Interface) Option {
	return func(o *option) {
		o.logger = logger
	}
}

// New init DB
func newOption(opts ...Option) *option {
	o := &option{
		maxOpenConn: 100,
		maxIdleConn: 80,
		ip:          "127.0.0.1",
		port:        "3306",
		charset:     "utf8mb4",
		prepareStmt: true,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

// DsnOf returns the dsn New dials with opts
func DsnOf(opts ...Option) string {
	return newOption(opts...).dsn()
}

func (o *option) dsn() string {
	return Dsn(o.user, o.password, o.ip, o.port, o.database, o.charset,
		o.timeout, o.readTimeout, o.writeTimeout)
}

func New(ctx context.Context, opts ...Option) (*DB, error) {
	o := newOption(opts...)
	if o.logger == nil {
		level := glogger.Warn
		if o.debug {
			level = glogger.Info
		}
		o.logger = gormx.NewLog(glogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		})
	}
	cfg := mysql.Config{
		DSN: o.dsn(),
	}
	if o.conn != nil {
		cfg = mysql.Config{Conn: o.conn, SkipInitializeWithVersion: true}
	}
	client, err := gorm.Open(mysql.New(cfg), &gorm.Config{
		SkipDefaultTransaction: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true, // 不考虑表名单复数变化
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: o.prepareStmt,
		Logger:      o.logger,
	})
	if err != nil {
		return nil, err
	}
	client = client.WithContext(ctx)

	var sqlDB *sql.DB
	if sqlDB, err = client.DB(); err != nil {
		return nil, err
	}
	// 连接池配置
	sqlDB.SetMaxOpenConns(o.maxOpenConn)        // 默认值0，无限制
	sqlDB.SetMaxIdleConns(o.maxIdleConn)        // 默认值2
	sqlDB.SetConnMaxLifetime(o.connMaxLifetime) // 默认值0，永不过期

	return &DB{DB: client, queryTimeout: o.queryTimeout}, nil
}

func Dsn(
	user, password, ip, port, database, charset string,
	timeout, readTimeout, writeTimeout time.Duration,
) string {
	uri := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=%t&loc=%s",
		user, password, ip, port, database, charset, true, "UTC")
	if timeout != 0 {
		uri += fmt.Sprintf("&timeout=%s", timeout)
	}
	if readTimeout != 0 {
		uri += fmt.Sprintf("&readTimeout=%s", readTimeout)
	}
	if writeTimeout != 0 {
		uri += fmt.Sprintf("&writeTimeout=%s", writeTimeout)
	}
	return uri
}

type DB struct {
	*gorm.DB
	queryTimeout time.Duration
}

// With starts a session bound to ctx, the returned cancel must be called once the
// statement finished
func (d *DB) With(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if d.queryTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, d.queryTimeout)
	}
	return d.Session(&gorm.Session{Context: ctx}), cancel
}

// SQLDB returns the underlying pool
func (d *DB) SQLDB() (*sql.DB, error) {
	return d.DB.DB()
}

func (d *DB) Close() error {
	s, err := d.SQLDB()
	if err != nil {
		return err
	}
	return s.Close()
}
