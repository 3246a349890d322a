package main

import (
	"github.com/oguzhnsglm/diyet-sub000/config"
	"github.com/oguzhnsglm/diyet-sub000/routes"

	"go.uber.org/zap"
)

func main() {
	config.Init()
	defer config.Logger.Sync()

	r := routes.SetupRouter()
	if err := r.Run(":" + config.Port()); err != nil {
		config.Logger.Fatal("server stopped", zap.Error(err))
	}
}
