// Command netaddr exercises the address/host-name validator from the
// command line: it parses its argument the same way the library does and
// prints what the validator determined, without constructing or formatting
// a concrete address value (construction is out of this module's scope,
// see DESIGN.md).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	goip "github.com/arlorn/netaddr"
	"github.com/arlorn/netaddr/address_string_param"
)

var logger *zap.SugaredLogger

func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

type parseResult struct {
	Input         string   `json:"input"`
	Valid         bool     `json:"valid"`
	Error         string   `json:"error,omitempty"`
	ProviderKind  string   `json:"providerKind,omitempty"`
	IsIPv4        bool     `json:"isIPv4,omitempty"`
	IsIPv6        bool     `json:"isIPv6,omitempty"`
	IsEmpty       bool     `json:"isEmpty,omitempty"`
	IsAllAddrs    bool     `json:"isAllAddresses,omitempty"`
	PrefixLen     *int     `json:"prefixLen,omitempty"`
	Port          *int     `json:"port,omitempty"`
	Service       string   `json:"service,omitempty"`
	Host          string   `json:"host,omitempty"`
	Labels        []string `json:"labels,omitempty"`
	IsAddress     bool     `json:"isAddress,omitempty"`
}

func providerKind(addrStr *goip.IPAddressString) string {
	switch {
	case addrStr.IsEmpty():
		return "empty"
	case addrStr.IsAllAddresses():
		return "all"
	case addrStr.IsIPv4():
		return "ipv4"
	case addrStr.IsIPv6():
		return "ipv6"
	default:
		return "unknown"
	}
}

func runParse(allowEmpty, allowAll, allowIPv4, allowIPv6, allowPrefix bool, args []string) error {
	builder := new(address_string_param.IPAddressStringParamsBuilder).
		AllowEmpty(allowEmpty).
		AllowAll(allowAll).
		AllowIPv4(allowIPv4).
		AllowIPv6(allowIPv6).
		AllowPrefix(allowPrefix)
	params := builder.ToParams()

	results := make([]parseResult, 0, len(args))
	for _, arg := range args {
		logger.Debugw("parsing address", "input", arg)
		addrStr := goip.NewIPAddressStringParams(arg, params)
		res := parseResult{Input: arg}
		if err := addrStr.Validate(); err != nil {
			res.Error = err.Error()
		} else {
			res.Valid = true
			res.ProviderKind = providerKind(addrStr)
			res.IsIPv4 = addrStr.IsIPv4()
			res.IsIPv6 = addrStr.IsIPv6()
			res.IsEmpty = addrStr.IsEmpty()
			res.IsAllAddrs = addrStr.IsAllAddresses()
			if pl := addrStr.GetNetworkPrefixLen(); pl != nil {
				v := int(*pl)
				res.PrefixLen = &v
			}
		}
		results = append(results, res)
	}
	return printResults(results)
}

func runHost(allowPort, allowService bool, args []string) error {
	builder := new(address_string_param.HostNameParamsBuilder).
		AllowEmpty(false).
		AllowPort(allowPort).
		AllowService(allowService)
	params := builder.ToParams()

	results := make([]parseResult, 0, len(args))
	for _, arg := range args {
		logger.Debugw("parsing host", "input", arg)
		host := goip.NewHostNameParams(arg, params)
		res := parseResult{Input: arg}
		if err := host.Validate(); err != nil {
			res.Error = err.Error()
		} else {
			res.Valid = true
			res.Host = host.GetHost()
			res.Labels = host.GetNormalizedLabels()
			res.IsAddress = host.IsAddress()
			if p := host.GetPort(); p != nil {
				v := int(*p)
				res.Port = &v
			}
			res.Service = host.GetService()
		}
		results = append(results, res)
	}
	return printResults(results)
}

func runMAC(allowDashed, allowColonDelimited bool, args []string) error {
	builder := new(address_string_param.MACAddressStringParamsBuilder).
		AllowDashed(allowDashed).
		AllowColonDelimited(allowColonDelimited)
	params := builder.ToParams()

	results := make([]parseResult, 0, len(args))
	for _, arg := range args {
		logger.Debugw("parsing MAC address", "input", arg)
		macStr := goip.NewMACAddressStringParams(arg, params)
		res := parseResult{Input: arg}
		if err := macStr.Validate(); err != nil {
			res.Error = err.Error()
		} else {
			res.Valid = true
		}
		results = append(results, res)
	}
	return printResults(results)
}

func printResults(results []parseResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func main() {
	var debug bool

	root := &cobra.Command{
		Use:   "netaddr",
		Short: "Validate and parse IP/MAC addresses and host names",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging of each input as it is parsed")
	cobra.OnInitialize(func() {
		logger = newLogger(debug)
	})

	var allowEmpty, allowAll, allowIPv4, allowIPv6, allowPrefix bool
	parseCmd := &cobra.Command{
		Use:   "parse [address...]",
		Short: "Validate one or more IP address strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(allowEmpty, allowAll, allowIPv4, allowIPv6, allowPrefix, args)
		},
	}
	parseCmd.Flags().BoolVar(&allowEmpty, "allow-empty", true, "allow the empty string")
	parseCmd.Flags().BoolVar(&allowAll, "allow-all", true, "allow the \"*\" all-addresses string")
	parseCmd.Flags().BoolVar(&allowIPv4, "allow-ipv4", true, "allow IPv4 addresses")
	parseCmd.Flags().BoolVar(&allowIPv6, "allow-ipv6", true, "allow IPv6 addresses")
	parseCmd.Flags().BoolVar(&allowPrefix, "allow-prefix", true, "allow a /prefix length suffix")

	var allowPort, allowService bool
	hostCmd := &cobra.Command{
		Use:   "host [host...]",
		Short: "Validate one or more host name strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(allowPort, allowService, args)
		},
	}
	hostCmd.Flags().BoolVar(&allowPort, "allow-port", true, "allow a trailing :port")
	hostCmd.Flags().BoolVar(&allowService, "allow-service", true, "allow a trailing :service name")

	var allowDashed, allowColonDelimited bool
	macCmd := &cobra.Command{
		Use:   "mac [address...]",
		Short: "Validate one or more MAC/EUI-64 address strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMAC(allowDashed, allowColonDelimited, args)
		},
	}
	macCmd.Flags().BoolVar(&allowDashed, "allow-dashed", true, "allow dash-delimited segments")
	macCmd.Flags().BoolVar(&allowColonDelimited, "allow-colon-delimited", true, "allow colon-delimited segments")

	root.AddCommand(parseCmd, hostCmd, macCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
