//go:build rp2040 || rp2350

package config

// Set at link time, e.g.
//
//	tinygo flash -target=pico -ldflags="-X envnode-go/services/config.wifiSSID=..." .
var (
	wifiSSID     string
	wifiPassword string
	apiKey       string
)

// Load returns Defaults with the link-time secrets applied.
func Load() (Config, error) {
	c := Defaults()
	c.Secrets = Secrets{WiFiSSID: wifiSSID, WiFiPassword: wifiPassword, APIKey: apiKey}
	c.ConsoleUART = true
	return c, c.Validate()
}
