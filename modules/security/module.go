// Package security registers the namespace-0 endpoint and user identity
// token types.
package security

import (
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/specialistvlad/uaschema/modules/declare"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "security" }

// Register registers the declarations with the registry.
func (m *Module) Register(r *registry.Registry) error {
	d := declare.New(r, m.Name())

	d.Struct(312, "EndpointDescription", "The description of an endpoint that can be used to access a server.",
		model.Field("EndpointUrl", "String"),
		model.Field("Server", "ApplicationDescription"),
		model.Field("ServerCertificate", "ApplicationInstanceCertificate"),
		model.Field("SecurityMode", "MessageSecurityMode"),
		model.Field("SecurityPolicyUri", "String"),
		model.ArrayField("UserIdentityTokens", "UserTokenPolicy"),
		model.Field("TransportProfileUri", "String"),
		model.Field("SecurityLevel", "Byte"),
	)
	d.Struct(304, "UserTokenPolicy", "Describes a user token that can be used with a server.",
		model.Field("PolicyId", "String"),
		model.Field("TokenType", "UserTokenType"),
		model.Field("IssuedTokenType", "String"),
		model.Field("IssuerEndpointUrl", "String"),
		model.Field("SecurityPolicyUri", "String"),
	)
	d.Enum(302, "MessageSecurityMode", "The type of security to use on a message.",
		declare.V("Invalid", 0),
		declare.V("None", 1),
		declare.V("Sign", 2),
		declare.V("SignAndEncrypt", 3),
	)
	d.Enum(303, "UserTokenType", "The possible user token types.",
		declare.V("Anonymous", 0),
		declare.V("UserName", 1),
		declare.V("Certificate", 2),
		declare.V("IssuedToken", 3),
	)
	d.Enum(315, "SecurityTokenRequestType", "Indicates whether a token is being created or renewed.",
		declare.V("Issue", 0),
		declare.V("Renew", 1),
	)
	d.Struct(441, "ChannelSecurityToken", "The token that identifies a set of keys for an active secure channel.",
		model.Field("ChannelId", "UInt32"),
		model.Field("TokenId", "UInt32"),
		model.Field("CreatedAt", "UtcTime"),
		model.Field("RevisedLifetime", "UInt32"),
	)
	d.Struct(456, "SignatureData", "A digital signature.",
		model.Field("Algorithm", "String"),
		model.Field("Signature", "ByteString"),
	)

	return d.Err()
}
