// Copyright 2026, The heroku-go Authors.
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

// Package pipelines describes the pipeline, coupling, promotion and transfer endpoints.
package pipelines

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// Pipeline stages.
const (
	StageTest        = "test"
	StageReview      = "review"
	StageDevelopment = "development"
	StageStaging     = "staging"
	StageProduction  = "production"
)

// List lists the pipelines visible to the account.
func List() client.Endpoint[[]apitype.Pipeline] {
	return client.NewEndpoint[[]apitype.Pipeline](http.MethodGet, "pipelines")
}

// NameFilter restricts a pipeline listing to an exact name.
type NameFilter struct {
	Name string `url:"eq[name],omitempty"`
}

// ListByName lists the pipelines named name.
func ListByName(name string) client.Endpoint[[]apitype.Pipeline] {
	return client.NewEndpoint[[]apitype.Pipeline](http.MethodGet, "pipelines").
		WithQuery(NameFilter{Name: name})
}

// Info returns a pipeline by name or ID.
func Info(pipelineID string) client.Endpoint[apitype.Pipeline] {
	return client.NewEndpoint[apitype.Pipeline](http.MethodGet, client.Pathf("pipelines/%s", pipelineID))
}

// Owner identifies the team or user owning a pipeline.
type Owner struct {
	ID string `json:"id"`
	// Type is either "team" or "user".
	Type string `json:"type"`
}

// CreateParams describe a new pipeline. Name must match ^[a-z][a-z0-9-]{2,29}$.
type CreateParams struct {
	Name  string `json:"name"`
	Owner *Owner `json:"owner,omitempty"`
}

// Create creates a pipeline.
func Create(params CreateParams) client.Endpoint[apitype.Pipeline] {
	return client.NewEndpoint[apitype.Pipeline](http.MethodPost, "pipelines").
		WithBody(client.Snapshot(params))
}

// UpdateParams rename a pipeline.
type UpdateParams struct {
	Name *string `json:"name,omitempty"`
}

// Update changes a pipeline.
func Update(pipelineID string, params UpdateParams) client.Endpoint[apitype.Pipeline] {
	return client.NewEndpoint[apitype.Pipeline](http.MethodPatch, client.Pathf("pipelines/%s", pipelineID)).
		WithBody(client.Snapshot(params))
}

// Delete deletes a pipeline.
func Delete(pipelineID string) client.Endpoint[apitype.Pipeline] {
	return client.NewEndpoint[apitype.Pipeline](http.MethodDelete, client.Pathf("pipelines/%s", pipelineID))
}

// LatestBuilds lists the most recent build of each app in a pipeline.
func LatestBuilds(pipelineID string) client.Endpoint[[]apitype.Build] {
	return client.NewEndpoint[[]apitype.Build](http.MethodGet, client.Pathf("pipelines/%s/latest-builds", pipelineID))
}

// DeploymentList lists the most recent release of each app in a pipeline.
func DeploymentList(pipelineID string) client.Endpoint[[]apitype.Release] {
	return client.NewEndpoint[[]apitype.Release](http.MethodGet,
		client.Pathf("pipelines/%s/latest-deployments", pipelineID))
}

// CouplingCreateParams couple an app to a pipeline stage.
type CouplingCreateParams struct {
	App      string `json:"app"`
	Pipeline string `json:"pipeline"`
	Stage    string `json:"stage"`
}

// CouplingCreate adds an app to a pipeline stage.
func CouplingCreate(appID, pipelineID, stage string) client.Endpoint[apitype.PipelineCoupling] {
	return client.NewEndpoint[apitype.PipelineCoupling](http.MethodPost, "pipeline-couplings").
		WithBody(CouplingCreateParams{App: appID, Pipeline: pipelineID, Stage: stage})
}

// CouplingList lists every pipeline coupling visible to the account.
func CouplingList() client.Endpoint[[]apitype.PipelineCoupling] {
	return client.NewEndpoint[[]apitype.PipelineCoupling](http.MethodGet, "pipeline-couplings")
}

// CouplingListByPipeline lists the couplings of a pipeline.
func CouplingListByPipeline(pipelineID string) client.Endpoint[[]apitype.PipelineCoupling] {
	return client.NewEndpoint[[]apitype.PipelineCoupling](http.MethodGet,
		client.Pathf("pipelines/%s/pipeline-couplings", pipelineID))
}

// CouplingListByCurrentUser lists the couplings of the authenticated user's apps.
func CouplingListByCurrentUser() client.Endpoint[[]apitype.PipelineCoupling] {
	return client.NewEndpoint[[]apitype.PipelineCoupling](http.MethodGet, "users/~/pipeline-couplings")
}

// CouplingListByTeam lists the couplings of a team's apps.
func CouplingListByTeam(teamID string) client.Endpoint[[]apitype.PipelineCoupling] {
	return client.NewEndpoint[[]apitype.PipelineCoupling](http.MethodGet,
		client.Pathf("teams/%s/pipeline-couplings", teamID))
}

// CouplingInfo returns a coupling by ID.
func CouplingInfo(couplingID string) client.Endpoint[apitype.PipelineCoupling] {
	return client.NewEndpoint[apitype.PipelineCoupling](http.MethodGet,
		client.Pathf("pipeline-couplings/%s", couplingID))
}

// CouplingInfoByApp returns the coupling of an app.
func CouplingInfoByApp(appID string) client.Endpoint[apitype.PipelineCoupling] {
	return client.NewEndpoint[apitype.PipelineCoupling](http.MethodGet,
		client.Pathf("apps/%s/pipeline-couplings", appID))
}

// CouplingUpdateParams move a coupled app to another stage.
type CouplingUpdateParams struct {
	Stage *string `json:"stage,omitempty"`
}

// CouplingUpdate moves a coupled app to another stage.
func CouplingUpdate(couplingID string, params CouplingUpdateParams) client.Endpoint[apitype.PipelineCoupling] {
	return client.NewEndpoint[apitype.PipelineCoupling](http.MethodPatch,
		client.Pathf("pipeline-couplings/%s", couplingID)).
		WithBody(client.Snapshot(params))
}

// CouplingDelete removes an app from its pipeline.
func CouplingDelete(couplingID string) client.Endpoint[apitype.PipelineCoupling] {
	return client.NewEndpoint[apitype.PipelineCoupling](http.MethodDelete,
		client.Pathf("pipeline-couplings/%s", couplingID))
}

// PromotionApp identifies an app in a promotion by ID.
type PromotionApp struct {
	App apitype.IDRef `json:"app"`
}

// PromotionCreateParams copy the release of the source app to the targets.
type PromotionCreateParams struct {
	Pipeline apitype.IDRef  `json:"pipeline"`
	Source   PromotionApp   `json:"source"`
	Targets  []PromotionApp `json:"targets"`
}

// PromotionCreate promotes the current release of sourceAppID to each of targetAppIDs.
func PromotionCreate(pipelineID, sourceAppID string, targetAppIDs ...string) client.Endpoint[apitype.PipelinePromotion] {
	params := PromotionCreateParams{
		Pipeline: apitype.IDRef{ID: pipelineID},
		Source:   PromotionApp{App: apitype.IDRef{ID: sourceAppID}},
		Targets:  make([]PromotionApp, 0, len(targetAppIDs)),
	}
	for _, id := range targetAppIDs {
		params.Targets = append(params.Targets, PromotionApp{App: apitype.IDRef{ID: id}})
	}
	return client.NewEndpoint[apitype.PipelinePromotion](http.MethodPost, "pipeline-promotions").
		WithBody(params)
}

// PromotionInfo returns a promotion by ID.
func PromotionInfo(promotionID string) client.Endpoint[apitype.PipelinePromotion] {
	return client.NewEndpoint[apitype.PipelinePromotion](http.MethodGet,
		client.Pathf("pipeline-promotions/%s", promotionID))
}

// PromotionTargetList lists the targets of a promotion and their status.
func PromotionTargetList(promotionID string) client.Endpoint[[]apitype.PromotionTarget] {
	return client.NewEndpoint[[]apitype.PromotionTarget](http.MethodGet,
		client.Pathf("pipeline-promotions/%s/promotion-targets", promotionID))
}

// TransferCreateParams hand a pipeline to a new owner.
type TransferCreateParams struct {
	NewOwner Owner         `json:"new_owner"`
	Pipeline apitype.IDRef `json:"pipeline"`
}

// TransferCreate transfers a pipeline and its apps to another team or user.
func TransferCreate(pipelineID, newOwnerID, newOwnerType string) client.Endpoint[apitype.PipelineTransfer] {
	return client.NewEndpoint[apitype.PipelineTransfer](http.MethodPost, "pipeline-transfers").
		WithBody(TransferCreateParams{
			NewOwner: Owner{ID: newOwnerID, Type: newOwnerType},
			Pipeline: apitype.IDRef{ID: pipelineID},
		})
}
