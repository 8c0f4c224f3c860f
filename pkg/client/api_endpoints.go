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

package client

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/heroku-go/heroku/pkg/util/contract"
)

// rootPath returns p with exactly one leading slash. Dot segments are kept as they are; they name resources, not
// directories.
func rootPath(p string) string {
	return "/" + strings.TrimPrefix(p, "/")
}

// EndpointName gets the friendly name of the endpoint with the given method and path, or "unknown" if the pair is
// not a known Platform API endpoint. Paths are relative to the API root, with or without a leading slash.
func EndpointName(method, path string) string {
	path = rootPath(path)

	u, err := url.Parse("http://localhost" + path)
	if err != nil {
		return "unknown"
	}

	req := http.Request{
		Method: method,
		URL:    u,
	}
	var match mux.RouteMatch
	if !routes.Match(&req, &match) {
		return "unknown"
	}

	return match.Route.GetName()
}

// routes is the canonical muxer we use to determine friendly names for Platform API endpoints.
var routes *mux.Router

// nolint: lll
func init() {
	routes = mux.NewRouter().UseEncodedPath()

	// addEndpoint registers the endpoint with the indicated method, path, and friendly name with the route table.
	addEndpoint := func(method, path, name string) {
		if err := routes.Path(path).Methods(method).Name(name).GetError(); err != nil {
			contract.Failf("registering endpoint %s %s: %v", method, path, err)
		}
	}

	// Account
	addEndpoint("GET", "/account", "getAccount")
	addEndpoint("PATCH", "/account", "updateAccount")
	addEndpoint("DELETE", "/account", "deleteAccount")
	addEndpoint("GET", "/account/features", "listAccountFeatures")
	addEndpoint("GET", "/account/features/{feature}", "getAccountFeature")
	addEndpoint("PATCH", "/account/features/{feature}", "updateAccountFeature")
	addEndpoint("GET", "/account/app-transfers", "listAppTransfers")
	addEndpoint("POST", "/account/app-transfers", "createAppTransfer")
	addEndpoint("GET", "/account/app-transfers/{transfer}", "getAppTransfer")
	addEndpoint("PATCH", "/account/app-transfers/{transfer}", "updateAppTransfer")
	addEndpoint("DELETE", "/account/app-transfers/{transfer}", "deleteAppTransfer")
	addEndpoint("GET", "/account/credits", "listCredits")
	addEndpoint("POST", "/account/credits", "createCredit")
	addEndpoint("GET", "/account/credits/{credit}", "getCredit")
	addEndpoint("POST", "/password-resets", "resetPassword")
	addEndpoint("POST", "/password-resets/{token}/actions/finalize", "completePasswordReset")
	addEndpoint("GET", "/users/~/pipeline-couplings", "listCurrentUserPipelineCouplings")
	addEndpoint("GET", "/users/{account}", "getUser")
	addEndpoint("PATCH", "/users/{account}", "updateUser")
	addEndpoint("DELETE", "/users/{account}", "deleteUser")
	addEndpoint("GET", "/users/{account}/apps", "listOwnedAndCollaboratedApps")

	// Apps
	addEndpoint("GET", "/apps", "listApps")
	addEndpoint("POST", "/apps", "createApp")
	addEndpoint("GET", "/apps/{app}", "getApp")
	addEndpoint("PATCH", "/apps/{app}", "updateApp")
	addEndpoint("DELETE", "/apps/{app}", "deleteApp")
	addEndpoint("POST", "/apps/{app}/acm", "enableACM")
	addEndpoint("PATCH", "/apps/{app}/acm", "refreshACM")
	addEndpoint("DELETE", "/apps/{app}/acm", "disableACM")
	addEndpoint("GET", "/apps/{app}/features", "listAppFeatures")
	addEndpoint("GET", "/apps/{app}/features/{feature}", "getAppFeature")
	addEndpoint("PATCH", "/apps/{app}/features/{feature}", "updateAppFeature")

	// Builds
	addEndpoint("GET", "/apps/{app}/builds", "listBuilds")
	addEndpoint("POST", "/apps/{app}/builds", "createBuild")
	addEndpoint("GET", "/apps/{app}/builds/{build}", "getBuild")
	addEndpoint("DELETE", "/apps/{app}/build-cache", "deleteBuildCache")
	addEndpoint("GET", "/apps/{app}/buildpack-installations", "listBuildpackInstallations")
	addEndpoint("PUT", "/apps/{app}/buildpack-installations", "updateBuildpackInstallations")

	// Dynos
	addEndpoint("GET", "/apps/{app}/dynos", "listDynos")
	addEndpoint("POST", "/apps/{app}/dynos", "createDyno")
	addEndpoint("DELETE", "/apps/{app}/dynos", "restartAllDynos")
	addEndpoint("GET", "/apps/{app}/dynos/{dyno}", "getDyno")
	addEndpoint("DELETE", "/apps/{app}/dynos/{dyno}", "restartDyno")
	addEndpoint("POST", "/apps/{app}/dynos/{dyno}/actions/stop", "stopDyno")
	addEndpoint("GET", "/apps/{app}/formation", "listFormation")
	addEndpoint("PATCH", "/apps/{app}/formation", "batchUpdateFormation")
	addEndpoint("GET", "/apps/{app}/formation/{formation}", "getFormation")
	addEndpoint("PATCH", "/apps/{app}/formation/{formation}", "updateFormation")
	addEndpoint("GET", "/dyno-sizes", "listDynoSizes")

	// Pipelines
	addEndpoint("GET", "/pipelines", "listPipelines")
	addEndpoint("POST", "/pipelines", "createPipeline")
	addEndpoint("GET", "/pipelines/{pipeline}", "getPipeline")
	addEndpoint("PATCH", "/pipelines/{pipeline}", "updatePipeline")
	addEndpoint("DELETE", "/pipelines/{pipeline}", "deletePipeline")
	addEndpoint("GET", "/pipelines/{pipeline}/latest-builds", "listPipelineLatestBuilds")
	addEndpoint("GET", "/pipelines/{pipeline}/latest-deployments", "listPipelineLatestDeployments")
	addEndpoint("GET", "/pipelines/{pipeline}/pipeline-couplings", "listPipelineCouplingsByPipeline")
	addEndpoint("GET", "/pipelines/{pipeline}/stage/{stage}/config-vars", "getPipelineConfigVars")
	addEndpoint("PATCH", "/pipelines/{pipeline}/stage/{stage}/config-vars", "updatePipelineConfigVars")
	addEndpoint("GET", "/pipeline-couplings", "listPipelineCouplings")
	addEndpoint("POST", "/pipeline-couplings", "createPipelineCoupling")
	addEndpoint("GET", "/pipeline-couplings/{coupling}", "getPipelineCoupling")
	addEndpoint("PATCH", "/pipeline-couplings/{coupling}", "updatePipelineCoupling")
	addEndpoint("DELETE", "/pipeline-couplings/{coupling}", "deletePipelineCoupling")
	addEndpoint("GET", "/apps/{app}/pipeline-couplings", "getPipelineCouplingByApp")
	addEndpoint("POST", "/pipeline-promotions", "createPipelinePromotion")
	addEndpoint("GET", "/pipeline-promotions/{promotion}", "getPipelinePromotion")
	addEndpoint("GET", "/pipeline-promotions/{promotion}/promotion-targets", "listPromotionTargets")
	addEndpoint("POST", "/pipeline-transfers", "createPipelineTransfer")

	// Teams
	addEndpoint("GET", "/teams", "listTeams")
	addEndpoint("POST", "/teams", "createTeam")
	addEndpoint("GET", "/teams/permissions", "listTeamAppPermissions")
	addEndpoint("POST", "/teams/apps", "createTeamApp")
	addEndpoint("GET", "/teams/apps/{app}", "getTeamApp")
	addEndpoint("PATCH", "/teams/apps/{app}", "updateTeamApp")
	addEndpoint("GET", "/teams/apps/{app}/collaborators", "listTeamAppCollaborators")
	addEndpoint("POST", "/teams/apps/{app}/collaborators", "createTeamAppCollaborator")
	addEndpoint("GET", "/teams/apps/{app}/collaborators/{collaborator}", "getTeamAppCollaborator")
	addEndpoint("PATCH", "/teams/apps/{app}/collaborators/{collaborator}", "updateTeamAppCollaborator")
	addEndpoint("DELETE", "/teams/apps/{app}/collaborators/{collaborator}", "deleteTeamAppCollaborator")
	addEndpoint("GET", "/teams/{team}", "getTeam")
	addEndpoint("PATCH", "/teams/{team}", "updateTeam")
	addEndpoint("DELETE", "/teams/{team}", "deleteTeam")
	addEndpoint("GET", "/teams/{team}/apps", "listTeamApps")
	addEndpoint("GET", "/teams/{team}/members", "listTeamMembers")
	addEndpoint("PUT", "/teams/{team}/members", "createOrUpdateTeamMember")
	addEndpoint("DELETE", "/teams/{team}/members/{member}", "deleteTeamMember")
	addEndpoint("GET", "/teams/{team}/invitations", "listTeamInvitations")
	addEndpoint("PUT", "/teams/{team}/invitations", "createTeamInvitation")
	addEndpoint("DELETE", "/teams/{team}/invitations/{invitation}", "revokeTeamInvitation")
	addEndpoint("GET", "/teams/{team}/pipeline-couplings", "listPipelineCouplingsByTeam")
	addEndpoint("GET", "/enterprise-accounts/{account}/teams", "listEnterpriseAccountTeams")
	addEndpoint("POST", "/enterprise-accounts/{account}/teams", "createEnterpriseAccountTeam")

	// OAuth
	addEndpoint("GET", "/oauth/authorizations", "listOAuthAuthorizations")
	addEndpoint("POST", "/oauth/authorizations", "createOAuthAuthorization")
	addEndpoint("GET", "/oauth/authorizations/{authorization}", "getOAuthAuthorization")
	addEndpoint("DELETE", "/oauth/authorizations/{authorization}", "deleteOAuthAuthorization")
	addEndpoint("POST", "/oauth/authorizations/{authorization}/actions/regenerate-tokens", "regenerateOAuthAuthorization")
	addEndpoint("GET", "/oauth/clients", "listOAuthClients")
	addEndpoint("POST", "/oauth/clients", "createOAuthClient")
	addEndpoint("GET", "/oauth/clients/{client}", "getOAuthClient")
	addEndpoint("PATCH", "/oauth/clients/{client}", "updateOAuthClient")
	addEndpoint("DELETE", "/oauth/clients/{client}", "deleteOAuthClient")
	addEndpoint("POST", "/oauth/clients/{client}/actions/rotate-credentials", "rotateOAuthClientCredentials")
	addEndpoint("POST", "/oauth/tokens", "createOAuthToken")
	addEndpoint("DELETE", "/oauth/tokens/{token}", "deleteOAuthToken")

	// Add-ons
	addEndpoint("GET", "/addons", "listAddons")
	addEndpoint("GET", "/addons/{addon}", "getAddon")
	addEndpoint("POST", "/addons/{addon}/actions/provision", "provisionAddon")
	addEndpoint("POST", "/addons/{addon}/actions/deprovision", "deprovisionAddon")
	addEndpoint("GET", "/addons/{addon}/addon-attachments", "listAddonAttachmentsByAddon")
	addEndpoint("GET", "/addons/{addon}/config", "listAddonConfig")
	addEndpoint("PATCH", "/addons/{addon}/config", "updateAddonConfig")
	addEndpoint("GET", "/addons/{addon}/webhooks", "listAddonWebhooks")
	addEndpoint("POST", "/addons/{addon}/webhooks", "createAddonWebhook")
	addEndpoint("GET", "/addons/{addon}/webhooks/{webhook}", "getAddonWebhook")
	addEndpoint("PATCH", "/addons/{addon}/webhooks/{webhook}", "updateAddonWebhook")
	addEndpoint("DELETE", "/addons/{addon}/webhooks/{webhook}", "deleteAddonWebhook")
	addEndpoint("GET", "/apps/{app}/addons", "listAppAddons")
	addEndpoint("POST", "/apps/{app}/addons", "createAddon")
	addEndpoint("GET", "/apps/{app}/addons/{addon}", "getAppAddon")
	addEndpoint("PATCH", "/apps/{app}/addons/{addon}", "updateAddon")
	addEndpoint("DELETE", "/apps/{app}/addons/{addon}", "deleteAddon")
	addEndpoint("POST", "/actions/addons/resolve", "resolveAddons")
	addEndpoint("GET", "/addon-attachments", "listAddonAttachments")
	addEndpoint("POST", "/addon-attachments", "createAddonAttachment")
	addEndpoint("GET", "/addon-attachments/{attachment}", "getAddonAttachment")
	addEndpoint("DELETE", "/addon-attachments/{attachment}", "deleteAddonAttachment")
	addEndpoint("GET", "/apps/{app}/addon-attachments", "listAppAddonAttachments")
	addEndpoint("POST", "/actions/addon-attachments/resolve", "resolveAddonAttachments")
	addEndpoint("GET", "/addon-services", "listAddonServices")
	addEndpoint("GET", "/addon-services/{service}", "getAddonService")
	addEndpoint("GET", "/addon-services/{service}/plans", "listAddonPlans")

	// Spaces
	addEndpoint("GET", "/spaces", "listSpaces")
	addEndpoint("POST", "/spaces", "createSpace")
	addEndpoint("GET", "/spaces/{space}", "getSpace")
	addEndpoint("PATCH", "/spaces/{space}", "updateSpace")
	addEndpoint("DELETE", "/spaces/{space}", "deleteSpace")
	addEndpoint("GET", "/spaces/{space}/members", "listSpaceAccess")
	addEndpoint("GET", "/spaces/{space}/members/{account}", "getSpaceAccess")
	addEndpoint("PATCH", "/spaces/{space}/members/{account}", "updateSpaceAccess")
	addEndpoint("GET", "/spaces/{space}/nat", "getSpaceNAT")
	addEndpoint("GET", "/spaces/{space}/inbound-ruleset", "getInboundRuleset")
	addEndpoint("PUT", "/spaces/{space}/inbound-ruleset", "createInboundRuleset")
	addEndpoint("POST", "/spaces/{space}/transfer", "transferSpace")

	// Config vars
	addEndpoint("GET", "/apps/{app}/config-vars", "getConfigVars")
	addEndpoint("PATCH", "/apps/{app}/config-vars", "updateConfigVars")
	addEndpoint("GET", "/apps/{app}/releases/{release}/config-vars", "getReleaseConfigVars")

	// Collaborators
	addEndpoint("GET", "/apps/{app}/collaborators", "listCollaborators")
	addEndpoint("POST", "/apps/{app}/collaborators", "createCollaborator")
	addEndpoint("GET", "/apps/{app}/collaborators/{collaborator}", "getCollaborator")
	addEndpoint("DELETE", "/apps/{app}/collaborators/{collaborator}", "deleteCollaborator")

	// Domains
	addEndpoint("GET", "/apps/{app}/domains", "listDomains")
	addEndpoint("POST", "/apps/{app}/domains", "createDomain")
	addEndpoint("GET", "/apps/{app}/domains/{domain}", "getDomain")
	addEndpoint("PATCH", "/apps/{app}/domains/{domain}", "updateDomain")
	addEndpoint("DELETE", "/apps/{app}/domains/{domain}", "deleteDomain")

	// Webhooks
	addEndpoint("GET", "/apps/{app}/webhooks", "listAppWebhooks")
	addEndpoint("POST", "/apps/{app}/webhooks", "createAppWebhook")
	addEndpoint("GET", "/apps/{app}/webhooks/{webhook}", "getAppWebhook")
	addEndpoint("PATCH", "/apps/{app}/webhooks/{webhook}", "updateAppWebhook")
	addEndpoint("DELETE", "/apps/{app}/webhooks/{webhook}", "deleteAppWebhook")
	addEndpoint("GET", "/apps/{app}/webhook-deliveries", "listWebhookDeliveries")
	addEndpoint("GET", "/apps/{app}/webhook-deliveries/{delivery}", "getWebhookDelivery")
	addEndpoint("GET", "/apps/{app}/webhook-events", "listWebhookEvents")
	addEndpoint("GET", "/apps/{app}/webhook-events/{event}", "getWebhookEvent")

	// Releases
	addEndpoint("GET", "/apps/{app}/releases", "listReleases")
	addEndpoint("POST", "/apps/{app}/releases", "createRelease")
	addEndpoint("GET", "/apps/{app}/releases/{release}", "getRelease")
}
