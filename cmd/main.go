package main

import (
	"github.com/sabordecasa/storefront/internal/app"
	"github.com/sabordecasa/storefront/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
