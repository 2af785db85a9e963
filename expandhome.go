package qpcr

import (
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// ExpandHome expands a leading ~ to the current user's home directory, so
// flags like -file ~/runs/plate3.csv behave the way the shell would have
// treated them unquoted.
func ExpandHome(path string) string {
	if path == "~" {
		path = "~/"
	}

	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, path[2:])
	}

	return path
}
