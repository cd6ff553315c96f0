//
// Copyright 2023 Evgenii Pochechuev
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

/*
goip is a library for validating and parsing IPv4, IPv6, MAC address, and host name strings.

# Benefits of this Library

The primary goals are:
- Single-pass parsing of IPv4 and IPv6 addresses, covering compressed, mixed, inet_aton,
  and base-85 (RFC 1924) forms, plus commonly used host name formats.
- Recognition of supplementary host forms: bracketed IPv6 literals, UNC IPv6 literal
  names, and reverse-DNS names (in-addr.arpa, ip6.arpa/ip6.int).
- Decoupling address parsing from host parsing.
- Configurable parsing options for allowed formats: IPv4, IPv6, subnet wildcards and
  ranges, inet_aton variants, prefix lengths and masks, zones, ports and services.
- Parsing of prevalent MAC address formats (colon, dash, dotted, space-separated).
- Validation errors reported with the same message catalog and wrapping conventions
  throughout, regardless of which of the three string types is being parsed.

# Design Overview

This library revolves around three string types:
- `IPAddressString`
- `HostName`
- `MACAddressString`
Each validates and parses its text into an internal parsed representation (segment
values, ranges, prefix/mask/zone/port qualifiers) without constructing a full address
value graph; `IPAddress`, `IPv4Address`, `IPv6Address`, and `MACAddress` are thin
version-tagged wrappers used to carry an already-provided address through the same
provider interface a parsed string uses.
*/
package goip
