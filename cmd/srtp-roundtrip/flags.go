package main

import (
	flag "github.com/spf13/pflag"
)

var (
	flagSSRC       uint32
	flagSequence   uint16
	flagROC        uint32
	flagPayload    string
	flagEncryption string
	flagAuth       string
	flagHelp       bool
)

func init() {
	flag.Uint32VarP(&flagSSRC, "ssrc", "s", 0x1234, "RTP synchronization source")
	flag.Uint16VarP(&flagSequence, "sequence", "n", 0, "RTP sequence number of the sample packet")
	flag.Uint32Var(&flagROC, "roc", 0, "Initial roll-over counter")
	flag.StringVarP(&flagPayload, "payload", "p", "the quick brown fox", "Payload to round-trip")
	flag.StringVarP(&flagEncryption, "encryption", "e", "aes-cm", "Encryption: aes-cm, aes-f8, twofish-cm, twofish-f8, none")
	flag.StringVarP(&flagAuth, "auth", "a", "hmac-sha1", "Authentication: hmac-sha1, skein, none")
	flag.BoolVarP(&flagHelp, "help", "h", false, "Print usage information and exit")
}

const helpString = `Round-trip a sample RTP packet through Protect/Unprotect

Usage: srtp-roundtrip [OPTION]...

  -s, --ssrc=NUM          RTP synchronization source (default: 0x1234)
  -n, --sequence=NUM      RTP sequence number (default: 0)
      --roc=NUM           Initial roll-over counter (default: 0)
  -p, --payload=STRING    Payload to round-trip
  -e, --encryption=NAME   aes-cm, aes-f8, twofish-cm, twofish-f8, none
  -a, --auth=NAME         hmac-sha1, skein, none
  -h, --help              Prints this help message and exits`
