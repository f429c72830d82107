package urlblocks

import "github.com/tidwall/hashmap"

// defaultPorts maps well-known URL schemes to their default port numbers,
// for DefaultPort() lookups on URLs without an explicit port.
var defaultPorts hashmap.Map[string, int]

func init() {
	for _, entry := range []struct {
		scheme string
		port   int
	}{
		{"ftp", 21},
		{"ssh", 22},
		{"telnet", 23},
		{"smtp", 25},
		{"gopher", 70},
		{"http", 80},
		{"ws", 80},
		{"pop3", 110},
		{"nntp", 119},
		{"imap", 143},
		{"ldap", 389},
		{"https", 443},
		{"wss", 443},
		{"smtps", 465},
		{"rtsp", 554},
		{"ldaps", 636},
		{"imaps", 993},
		{"pop3s", 995},
	} {
		defaultPorts.Set(entry.scheme, entry.port)
	}
}
