package main

import (
	"fmt"

	"github.com/lanikai/srtp/srtp"
)

func parsePolicy(encryption, auth string) (srtp.Policy, error) {
	p := srtp.DefaultPolicy()

	switch encryption {
	case "aes-cm":
		p.EncryptionType = srtp.EncryptionAESCM
	case "aes-f8":
		p.EncryptionType = srtp.EncryptionAESF8
	case "twofish-cm":
		p.EncryptionType = srtp.EncryptionTwofishCM
		p.EncKeyLength = 16
	case "twofish-f8":
		p.EncryptionType = srtp.EncryptionTwofishF8
		p.EncKeyLength = 16
	case "none":
		p.EncryptionType = srtp.EncryptionNone
	default:
		return p, fmt.Errorf("unknown encryption %q", encryption)
	}

	switch auth {
	case "hmac-sha1":
		p.AuthenticationType = srtp.AuthenticationHMACSHA1
	case "skein":
		p.AuthenticationType = srtp.AuthenticationSkein
	case "none":
		p.AuthenticationType = srtp.AuthenticationNone
		p.AuthTagLength = 0
	default:
		return p, fmt.Errorf("unknown authentication %q", auth)
	}

	return p, nil
}
