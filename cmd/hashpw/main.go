// Command hashpw prints an APP_USERS line for a .env file. The value is
// single-quoted so that the "$" parts of the hash are kept literally; several
// users go comma-separated inside the same quotes.
//
//	hashpw -u admin            # password read from stdin
//	hashpw -u admin -p secret
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/utils"
)

func main() {
	log := logger.NewLogger("hashpw")

	var username, password string
	flag.StringVar(&username, "u", "", "username")
	flag.StringVar(&password, "p", "", "password (read from stdin when empty)")
	flag.Parse()

	if username == "" {
		log.Fatal().Msg("username is required")
	}

	if password == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatal().Err(err).Msg("error reading password")
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing password")
	}

	fmt.Printf("APP_USERS='%s:%s'\n", username, hash)
}
