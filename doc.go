// Package o1js provides zero-knowledge circuit gadgets ported from the o1js
// provable core, written against the gnark constraint-system frontend.
//
// Two gadget families are implemented:
//   - SHA-256 over 32-bit words held in single field elements, with
//     rotations proved through a shared chunked decomposition
//     (math/word, hash/sha256)
//   - Pallas group operations: complete addition with an explicit infinity
//     flag and variable-base scalar multiplication through a shifted
//     255-bit scalar (algebra/sw_pallas, host arithmetic in pasta)
//
// The word and hash gadgets are field-agnostic and run on any gnark curve;
// the Pallas gadgets need the Pallas base field as the native field and run
// under gnark's test engine at that modulus.
package o1js

import "github.com/blang/semver/v4"

// Version of the o1js gadget library.
var Version = semver.MustParse("0.1.0")
