//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/shielddb/shield/core"
	"github.com/shielddb/shield/x/character"
	"github.com/shielddb/shield/x/socket"
)

var characterServiceProvider = wire.NewSet(character.NewService, character.NewRepository)

func SetupCharacterService(db *gorm.DB, mc *memcache.Client, config core.Config) character.Service {
	wire.Build(characterServiceProvider)
	return nil
}

func SetupSocketService(rdb *redis.Client) socket.Service {
	wire.Build(socket.NewService)
	return nil
}
