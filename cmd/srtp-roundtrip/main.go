package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/lanikai/srtp/srtp"
)

func main() {
	flag.Parse()

	if flagHelp {
		fmt.Println(helpString)
		os.Exit(0)
	}

	policy, err := parsePolicy(flagEncryption, flagAuth)
	if err != nil {
		fail(err)
	}

	masterKey := make([]byte, policy.EncKeyLength)
	masterSalt := make([]byte, policy.SaltKeyLength)
	for i := range masterKey {
		masterKey[i] = byte(i + 1)
	}
	for i := range masterSalt {
		masterSalt[i] = byte(0xA0 + i)
	}

	sendCtx, err := srtp.New(flagSSRC, flagROC, 0, masterKey, masterSalt, policy)
	if err != nil {
		fail(err)
	}
	if err := sendCtx.DeriveSRTPKeys(uint64(flagROC)<<16 | uint64(flagSequence)); err != nil {
		fail(err)
	}

	recvCtx, err := srtp.New(flagSSRC, flagROC, 0, masterKey, masterSalt, policy)
	if err != nil {
		fail(err)
	}
	if err := recvCtx.DeriveSRTPKeys(uint64(flagROC)<<16 | uint64(flagSequence)); err != nil {
		fail(err)
	}

	buf := buildPacket(flagSSRC, flagSequence, []byte(flagPayload))
	if err := sendCtx.Protect(buf); err != nil {
		fail(err)
	}

	ok, err := recvCtx.Unprotect(buf)
	if err != nil {
		fail(err)
	}

	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	if !ok {
		red.Println("FAIL: receiver rejected the protected packet")
		os.Exit(1)
	}

	got := buf.Region(buf.Offset()+headerLength, len(flagPayload))
	if string(got) != flagPayload {
		red.Printf("FAIL: payload mismatch: got %q want %q\n", got, flagPayload)
		os.Exit(1)
	}

	green.Println("PASS")
}

func fail(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
