// Package pricing holds the route rate rule and its mirror relation.
//
// A rule is keyed by (origin, destination, service, weight band). For every
// non-self route the rule A->B and its mirror B->A carry identical rates.
// Self routes (origin == destination) have no mirror.
package pricing
