// Copyright 2025 Cuisinise
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


package correct

import "errors"

var (
	// ErrLexiconRequired indicates a nil lexicon store was passed.
	ErrLexiconRequired = errors.New("lexicon store is required")

	// ErrModelProviderRequired indicates a nil model provider was passed.
	ErrModelProviderRequired = errors.New("model provider is required")

	// ErrFeedbackStoreRequired indicates a nil feedback store was passed.
	ErrFeedbackStoreRequired = errors.New("feedback store is required")
)
