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


package feedback

import "errors"

var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("feedback store is closed")

	// ErrWriteFailed indicates the feedback line could not be durably
	// appended. The in-memory boost table is not updated when this happens.
	ErrWriteFailed = errors.New("feedback write failed")
)
