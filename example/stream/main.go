package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"siunits"
	siunitsmsgpack "siunits/msgpack"

	"github.com/charmbracelet/log"
)

// Sends msgpack encoded quantities over loopback UDP, a few bytes per
// datagram, and reassembles them on the receiving side.
func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "stream"})

	receiver, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		logger.Fatal(err)
	}
	defer receiver.Close()

	sender, err := net.DialUDP("udp", nil, receiver.LocalAddr().(*net.UDPAddr))
	if err != nil {
		logger.Fatal(err)
	}
	defer sender.Close()

	si := siunits.SI()
	readings := []string{"15 kN", "9.81 m.s-2", "20 degC", "3.6 MJ"}

	go func() {
		for _, r := range readings {
			data, err := siunitsmsgpack.Marshal(si.MustParse(r))
			if err != nil {
				logger.Fatal(err)
			}
			for len(data) > 0 {
				n := min(len(data), 7)
				if _, err := sender.Write(data[:n]); err != nil {
					logger.Fatal(err)
				}
				data = data[n:]
			}
		}
	}()

	var qb siunitsmsgpack.QuantityBuffer
	buf := make([]byte, 1500)
	for got := 0; got < len(readings); {
		receiver.SetReadDeadline(time.Now().Add(2 * time.Second))
		n, err := receiver.Read(buf)
		if err != nil {
			logger.Fatal(err)
		}
		quantities, err := qb.Feed(buf[:n])
		if err != nil {
			logger.Warn("dropped undecodable data", "err", err)
		}
		for _, m := range quantities {
			q, err := siunitsmsgpack.ToQuantity(si, m)
			if err != nil {
				logger.Fatal(err)
			}
			fmt.Printf("received %s (base %s)\n", q, q.ToBase())
			got++
		}
	}
}
