package config

import "os"

type Config struct {
	ServerPort        string
	TesseractDataPath string
	DoctrAPIURL       string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata"
	}

	doctrAPIURL := os.Getenv("DOCTR_API_URL")
	if doctrAPIURL == "" {
		doctrAPIURL = "http://doctr:8080/ocr"
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		DoctrAPIURL:       doctrAPIURL,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}
