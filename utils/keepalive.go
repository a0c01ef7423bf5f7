package utils

import (
	"log"
	"time"

	"synapse/config"

	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"
)

// StartKeepAlive pings the public health endpoint every 14 minutes so
// free-tier hosting does not idle the process. No-op when KEEP_ALIVE_URL is
// unset.
func StartKeepAlive() {
	url := config.AppConfig.KeepAliveURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(30 * time.Second)

	c := cron.New()
	_, err := c.AddFunc("@every 14m", func() {
		resp, err := client.R().Get(url)
		if err != nil {
			log.Printf("Keep-alive ping failed: %v", err)
			return
		}
		log.Printf("Keep-alive ping: %s -> %d", url, resp.StatusCode())
	})
	if err != nil {
		log.Printf("Failed to schedule keep-alive ping: %v", err)
		return
	}
	c.Start()

	log.Printf("Keep-alive pinger started for %s", url)
}
