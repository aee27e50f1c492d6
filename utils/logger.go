package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
)

func init() {
	var out io.Writer = os.Stderr

	// File log theo ngày, không mở được thì ghi ra stderr
	if err := os.MkdirAll("logs", 0755); err == nil {
		timestamp := time.Now().Format("2006-01-02")
		logFile, err := os.OpenFile(fmt.Sprintf("logs/kinetix-%s.log", timestamp), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			out = logFile
		}
	}

	InfoLogger = log.New(out, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(out, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// LogInfo ghi log thông tin của các job nền
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// LogError ghi log lỗi của các job nền
func LogError(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}
