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

package apitype

import "time"

// PipelineOwner is the team or user owning a pipeline.
type PipelineOwner struct {
	ID string `json:"id"`
	// Type is either "team" or "user".
	Type string `json:"type"`
}

// Pipeline groups apps sharing a codebase into stages.
type Pipeline struct {
	CreatedAt time.Time      `json:"created_at"`
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Owner     *PipelineOwner `json:"owner"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// PipelineCoupling is the connection between an app and a pipeline stage.
type PipelineCoupling struct {
	App       IDRef     `json:"app"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Pipeline  IDRef     `json:"pipeline"`
	// Stage is one of "test", "review", "development", "staging" or "production".
	Stage     string    `json:"stage"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PromotionSource is the app and release a promotion copies from.
type PromotionSource struct {
	App     IDRef `json:"app"`
	Release IDRef `json:"release"`
}

// PipelinePromotion copies a slug from one app of a pipeline to others.
type PipelinePromotion struct {
	CreatedAt time.Time       `json:"created_at"`
	ID        string          `json:"id"`
	Pipeline  IDRef           `json:"pipeline"`
	Source    PromotionSource `json:"source"`
	Status    string          `json:"status"`
	UpdatedAt *time.Time      `json:"updated_at"`
}

// PromotionTarget is one destination app of a promotion.
type PromotionTarget struct {
	App               IDRef   `json:"app"`
	ErrorMessage      *string `json:"error_message"`
	ID                string  `json:"id"`
	PipelinePromotion IDRef   `json:"pipeline_promotion"`
	Release           *IDRef  `json:"release"`
	Status            string  `json:"status"`
}

// PipelineTransfer changes the owner of a pipeline along with its apps.
type PipelineTransfer struct {
	NewOwner      PipelineOwner `json:"new_owner"`
	Pipeline      IDRef         `json:"pipeline"`
	PreviousOwner PipelineOwner `json:"previous_owner"`
}
