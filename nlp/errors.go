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


package nlp

import "errors"

var (
	// ErrModelUnavailable is returned by no-op sub-models. Pipeline layers
	// treat it as the signal to take their documented fallback; it is never
	// surfaced to the correction caller.
	ErrModelUnavailable = errors.New("model unavailable")
)
