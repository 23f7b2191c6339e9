package marquee

// Version is the marquee release string. Overridden at build time:
//
//	go build -ldflags "-X github.com/aretw0/marquee.Version=v1.2.3"
var Version = "0.2.0-dev"
