package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host         string       `koanf:"host"`
	Google       Google       `koanf:"google"`
	Firebase     Firebase     `koanf:"firebase"`
	Availability Availability `koanf:"availability"`
	Database     Database     `koanf:"db"`
}

type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
}

type Firebase struct {
	Enabled         bool   `koanf:"enabled"`
	CredentialsFile string `koanf:"credentialsfile"`
}

// Availability controls the slot search policy: the daily window within which
// slots may be offered, the step between candidate starts, and how far ahead
// the search looks.
type Availability struct {
	BusinessHourStart  int `koanf:"businesshourstart"`
	BusinessHourEnd    int `koanf:"businesshourend"`
	GranularityMinutes int `koanf:"granularityminutes"`
	DaysAhead          int `koanf:"daysahead"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Availability: Availability{
			BusinessHourStart:  8,
			BusinessHourEnd:    21,
			GranularityMinutes: 30,
			DaysAhead:          7,
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "cheemco",
			Pass:   "",
			Name:   "cheemco",
			Schema: "cheemco",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "CHEEMCO_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "CHEEMCO_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
