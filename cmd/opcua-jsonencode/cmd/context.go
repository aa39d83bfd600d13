package cmd

import (
	"github.com/amine-amaach/opcua-json-codec/uajson"
	"github.com/amine-amaach/opcua-json-codec/utils"
)

// newEncodingContext builds an EncodingContext from the loaded Config,
// pre-seeding the namespace and server tables in the order the config
// lists them (index 1, 2, ... following the reserved index 0 entry) and
// applying the configured limits, the way the teacher's sensor service
// seeds a NamespaceManager from its own config before anything starts
// encoding.
func newEncodingContext(cfg utils.Config) *uajson.EncodingContext {
	ctx := uajson.NewEncodingContext()
	for _, ns := range cfg.Namespaces {
		ctx.Namespaces.Add(ns.URI)
	}
	for _, srv := range cfg.Servers {
		ctx.Servers.Add(srv.URI)
	}
	ctx.Limits.MaxStringLength = cfg.MaxStringLength
	ctx.Limits.MaxArrayLength = cfg.MaxArrayLength
	ctx.Limits.MaxRecursionDepth = cfg.MaxRecursionDepth
	ctx.Options.ValidateExtensionObjectBodies = cfg.ValidateBodies
	return ctx
}
