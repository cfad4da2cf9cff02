// Package rko is a random-key decoder for multi-vehicle, range-constrained
// routing with optional profit collection.
//
// An external evolutionary driver evolves a flat vector of keys in [0,1);
// this module turns each vector into a route and a score:
//
//	matrix/    dense distance matrix, Euclidean builder, min-max normalization
//	instance/  node records, vehicle/customer tagging, immutable instance context
//	keys/      key to permutation mapping and deterministic key streams
//	decoder/   cyclic route construction, penalties, emit hook, batch decode
//	config/    TOML settings and one-call Setup
//
// Vehicles are ordinary nodes whose id exceeds a threshold (1000 by default),
// so the search co-evolves the visiting order and the number and boundaries
// of vehicle legs in a single key vector.
//
// Quick start:
//
//	in, _ := instance.Load("instances/a.txt", instance.WithPolicy(instance.PolicyDistance))
//	d, _ := decoder.New(in)
//	res, _ := d.Decode(keys.Random(in.N(), keys.NewRand(1)))
//	fmt.Println(res.Status, res.Objective)
package rko
