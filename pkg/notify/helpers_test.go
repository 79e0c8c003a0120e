package notify

import "github.com/Semzy1/abbas-delight-bakry/pkg/config"

func mailerConfig(full bool) config.SMTPConfig {
	if !full {
		return config.SMTPConfig{Host: "smtp.example.com"}
	}
	return config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "orders@example.com",
		Password: "secret",
	}
}
