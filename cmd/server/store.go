package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eatwithchiso/service-booking/internal/common/database"
	"github.com/eatwithchiso/service-booking/internal/config"
	"github.com/eatwithchiso/service-booking/internal/kv"
)

// openStore connects the key-value driver selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.ServiceConfig, logger *zap.Logger) (kv.Store, error) {
	switch cfg.StoreDriver {
	case kv.DriverMemory:
		logger.Warn("using in-memory store; bookings are lost on restart")
		return kv.NewMemoryStore(), nil

	case kv.DriverPostgres:
		db, err := database.Connect(database.PostgresConfig{
			Host:     cfg.DBConfig.Host,
			Port:     cfg.DBConfig.Port,
			User:     cfg.DBConfig.User,
			Password: cfg.DBConfig.Password,
			DBName:   cfg.DBConfig.DBName,
			SSLMode:  cfg.DBConfig.SSLMode,
		}, logger)
		if err != nil {
			return nil, err
		}
		store := kv.NewPostgresStore(db)
		if err := store.Migrate(); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("migrate kv_entries: %w", err)
		}
		logger.Info("database migration completed")
		return store, nil

	case kv.DriverRedis:
		return kv.NewRedisStore(ctx, kv.RedisConfig{
			Addr:     cfg.RedisConfig.Addr,
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})

	case kv.DriverMongo:
		return kv.NewMongoStore(ctx, cfg.MongoConfig.URI, cfg.MongoConfig.Database)

	default:
		return nil, kv.UnknownDriver(cfg.StoreDriver)
	}
}
