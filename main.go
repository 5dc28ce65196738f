package main

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/sirupsen/logrus"

	"github.com/qwerty0999999/payment-projek/config"
	"github.com/qwerty0999999/payment-projek/controllers"
	"github.com/qwerty0999999/payment-projek/routes"
	"github.com/qwerty0999999/payment-projek/session"
	"github.com/qwerty0999999/payment-projek/storage"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Env == "production" {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatal("Gagal menyiapkan direktori data: ", err)
	}
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal("Gagal menyiapkan direktori upload: ", err)
	}

	ctrl := &controllers.Controller{
		Store:    store,
		Activity: storage.NewActivityLog(store),
		Sessions: session.NewManager(cfg.SessionKey, cfg.SessionMaxAge),
		Cfg:      cfg,
	}

	// Cloudinary opsional; tanpa URL ikon produk memakai emoji bawaan
	if cfg.CloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Gagal inisialisasi Cloudinary: ", err)
		}
		ctrl.Cld = cld
	}

	r := routes.Setup(ctrl, cfg.Env)

	logrus.WithFields(logrus.Fields{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Server running")
	log.Fatal(r.Run(":" + cfg.Port))
}
