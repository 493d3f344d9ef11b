// Command contact submits the contact form from a terminal, exercising the
// same validation and relay contract as the website.
//
//	contact --url https://voyager.example --company Acme --name Jo \
//	    --email jo@acme.com --subject support --message "Help\nplease"
//
// The relay URL defaults to CONTACT_RELAY_URL. Literal \n sequences in
// --message become newlines. The exit status is 0 when the relay accepted
// the submission, 1 otherwise.
package main

import (
	"os"

	"github.com/voyager-inc/contactrelay/pkg/config"
)

func main() {
	var cfg cliConfig
	config.MustLoad(&cfg)

	if err := newRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
