package parser

import (
	"github.com/erraggy/specdiff/model"
	"go.yaml.in/yaml/v4"
)

// normalizeAsyncAPI converts an AsyncAPI document into the canonical model.
//
// Each channel yields at most two endpoints: SUB-<channel> for a subscribe
// operation and PUB-<channel> for a publish operation. Channel operations
// carry no parameters or responses, and AsyncAPI security is not read.
func normalizeAsyncAPI(root *yaml.Node) *model.ApiSpec {
	info := mapGet(root, "info")
	spec := &model.ApiSpec{
		Name:      orDefault(mapString(info, "title"), defaultAsyncAPITitle),
		Version:   orDefault(mapString(info, "version"), defaultVersion),
		Type:      model.SpecTypeAsyncAPI,
		Endpoints: []model.Endpoint{},
		Security:  []model.SecurityDefinition{},
		Raw:       rawTree(root),
	}

	mapEach(mapGet(root, "channels"), func(channel string, item *yaml.Node) {
		if op := mapGet(item, "subscribe"); op != nil {
			spec.Endpoints = append(spec.Endpoints, channelEndpoint("SUB-", model.MethodSubscribe, channel, op))
		}
		if op := mapGet(item, "publish"); op != nil {
			spec.Endpoints = append(spec.Endpoints, channelEndpoint("PUB-", model.MethodPublish, channel, op))
		}
	})

	spec.Schemas = schemasFrom(mapGet(mapGet(root, "components"), "schemas"))
	return spec
}

func channelEndpoint(prefix, method, channel string, op *yaml.Node) model.Endpoint {
	return model.Endpoint{
		ID:          prefix + channel,
		Path:        channel,
		Method:      method,
		OperationID: mapString(op, "operationId"),
		Summary:     mapString(op, "summary"),
		Description: mapString(op, "description"),
		Parameters:  []model.Parameter{},
		Responses:   []model.Response{},
		Deprecated:  mapBool(op, "deprecated"),
		Tags:        tagsFrom(mapGet(op, "tags")),
	}
}
