package main

import (
	"flag"

	"github.com/sunthewhat/easy-cert-form/api"
	"github.com/sunthewhat/easy-cert-form/common/config"
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to the YAML config file")
	isVerifyMail := flag.Bool("VerifyMail", false, "Verify the SMTP connection and exit")
	flag.Parse()

	config.LoadConfig(*configPath)
	if *isVerifyMail {
		api.VerifyMail()
		return
	}

	api.InitFiber()
}
