package config

var ServerURLFromAddr = serverURLFromAddr
