// Package database 负责初始化主库与 Redis 连接。
package database

import (
	"fmt"
	"time"

	"edu-smart-go/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init 根据配置的驱动初始化数据库连接。
// driver 为 "mysql" 时连接 MySQL，其余情况一律按 sqlite 处理（本地单文件库）。
func Init(driver, dsn string) {
	var err error
	switch driver {
	case "mysql":
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("failed to connect database", err)
	}

	// 配置连接池
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", err)
	}

	if driver == "mysql" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// sqlite 单写者，限制连接数避免 database is locked
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info(fmt.Sprintf("数据库连接成功 (driver=%s)", driver))
}
