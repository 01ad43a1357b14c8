// Package diagnostics registers the namespace-0 server, session and
// subscription diagnostics structures.
package diagnostics

import (
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/specialistvlad/uaschema/modules/declare"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "diagnostics" }

// serviceCounters are the per-service counters of a session, in wire order.
var serviceCounters = []string{
	"TotalRequestCount",
	"UnauthorizedRequestCount",
	"ReadCount",
	"HistoryReadCount",
	"WriteCount",
	"HistoryUpdateCount",
	"CallCount",
	"CreateMonitoredItemsCount",
	"ModifyMonitoredItemsCount",
	"SetMonitoringModeCount",
	"SetTriggeringCount",
	"DeleteMonitoredItemsCount",
	"CreateSubscriptionCount",
	"ModifySubscriptionCount",
	"SetPublishingModeCount",
	"PublishCount",
	"RepublishCount",
	"TransferSubscriptionsCount",
	"DeleteSubscriptionsCount",
	"AddNodesCount",
	"AddReferencesCount",
	"DeleteNodesCount",
	"DeleteReferencesCount",
	"BrowseCount",
	"BrowseNextCount",
	"TranslateBrowsePathsToNodeIdsCount",
	"QueryFirstCount",
	"QueryNextCount",
	"RegisterNodesCount",
	"UnregisterNodesCount",
}

// Register registers the declarations with the registry. Several structures
// reference types of the core and security modules.
func (m *Module) Register(r *registry.Registry) error {
	d := declare.New(r, m.Name())

	session := []model.FieldDescriptor{
		model.Field("SessionId", "NodeId"),
		model.Field("SessionName", "String"),
		model.Field("ClientDescription", "ApplicationDescription"),
		model.Field("ServerUri", "String"),
		model.Field("EndpointUrl", "String"),
		model.ArrayField("LocaleIds", "LocaleId"),
		model.Field("ActualSessionTimeout", "Duration"),
		model.Field("MaxResponseMessageSize", "UInt32"),
		model.Field("ClientConnectionTime", "UtcTime"),
		model.Field("ClientLastContactTime", "UtcTime"),
		model.Field("CurrentSubscriptionsCount", "UInt32"),
		model.Field("CurrentMonitoredItemsCount", "UInt32"),
		model.Field("CurrentPublishRequestsInQueue", "UInt32"),
	}
	for _, name := range serviceCounters {
		typeName := "ServiceCounterDataType"
		if name == "UnauthorizedRequestCount" {
			typeName = "UInt32"
		}
		session = append(session, model.Field(name, typeName))
	}
	d.Struct(865, "SessionDiagnosticsDataType", "", session...)

	d.Struct(868, "SessionSecurityDiagnosticsDataType", "",
		model.Field("SessionId", "NodeId"),
		model.Field("ClientUserIdOfSession", "String"),
		model.ArrayField("ClientUserIdHistory", "String"),
		model.Field("AuthenticationMechanism", "String"),
		model.Field("Encoding", "String"),
		model.Field("TransportProtocol", "String"),
		model.Field("SecurityMode", "MessageSecurityMode"),
		model.Field("SecurityPolicyUri", "String"),
		model.Field("ClientCertificate", "ByteString"),
	)

	d.Struct(871, "ServiceCounterDataType", "",
		model.Field("TotalCount", "UInt32"),
		model.Field("ErrorCount", "UInt32"),
	)

	d.Struct(859, "ServerDiagnosticsSummaryDataType", "", declare.Counters("UInt32",
		"ServerViewCount",
		"CurrentSessionCount",
		"CumulatedSessionCount",
		"SecurityRejectedSessionCount",
		"RejectedSessionCount",
		"SessionTimeoutCount",
		"SessionAbortCount",
		"CurrentSubscriptionCount",
		"CumulatedSubscriptionCount",
		"PublishingIntervalCount",
		"SecurityRejectedRequestsCount",
		"RejectedRequestsCount",
	)...)

	subscription := []model.FieldDescriptor{
		model.Field("SessionId", "NodeId"),
		model.Field("SubscriptionId", "UInt32"),
		model.Field("Priority", "Byte"),
		model.Field("PublishingInterval", "Duration"),
	}
	subscription = append(subscription, declare.Counters("UInt32",
		"MaxKeepAliveCount",
		"MaxLifetimeCount",
		"MaxNotificationsPerPublish",
	)...)
	subscription = append(subscription, model.Field("PublishingEnabled", "Boolean"))
	subscription = append(subscription, declare.Counters("UInt32",
		"ModifyCount",
		"EnableCount",
		"DisableCount",
		"RepublishRequestCount",
		"RepublishMessageRequestCount",
		"RepublishMessageCount",
		"TransferRequestCount",
		"TransferredToAltClientCount",
		"TransferredToSameClientCount",
		"PublishRequestCount",
		"DataChangeNotificationsCount",
		"EventNotificationsCount",
		"NotificationsCount",
		"LatePublishRequestCount",
		"CurrentKeepAliveCount",
		"CurrentLifetimeCount",
		"UnacknowledgedMessageCount",
		"DiscardedMessageCount",
		"MonitoredItemCount",
		"DisabledMonitoredItemCount",
		"MonitoringQueueOverflowCount",
		"NextSequenceNumber",
		"EventQueueOverflowCount",
	)...)
	d.Struct(874, "SubscriptionDiagnosticsDataType", "", subscription...)

	d.Struct(299, "StatusResult", "",
		model.Field("StatusCode", "StatusCode"),
		model.Field("DiagnosticInfo", "DiagnosticInfo"),
	)

	return d.Err()
}
