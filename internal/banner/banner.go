// Package banner renders the CLI startup banner.
package banner

import "fmt"

const art = `  _            _       _
 | |_ _____  _| |_ ___| | __ _ ___ ___
 | __/ _ \ \/ / __/ __| |/ _` + "`" + ` / __/ __|
 | ||  __/>  <| || (__| | (_| \__ \__ \
  \__\___/_/\_\\__\___|_|\__,_|___/___/
`

// Banner returns the startup banner with the version appended.
func Banner(version string) string {
	return fmt.Sprintf("%s        %s\n\n", art, version)
}
