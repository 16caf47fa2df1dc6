// Package substitution holds the closed registries of template keys, validates
// substitution maps against them, and renders `${KEY}` placeholders.
package substitution

import (
	"errors"
	"fmt"
	"sort"

	"github.com/conn-castle/podkit/internal/messages"
)

// Key is a registered substitution key.
type Key string

// Podfile template keys.
const (
	// KeyExpoKitDependency is a pod dependency on ExpoKit (local or remote).
	KeyExpoKitDependency Key = "EXPOKIT_DEPENDENCY"
	// KeyExpoKitPath is the local path to the ExpoKit dependency.
	KeyExpoKitPath Key = "EXPOKIT_PATH"
	// KeyExpoKitTag is the tag used for the ExpoKit dependency.
	KeyExpoKitTag Key = "EXPOKIT_TAG"
	// KeyClientDependencies is dependencies.json rendered as Podfile declarations.
	KeyClientDependencies Key = "EXPONENT_CLIENT_DEPS"
	// KeyDetachedPostinstall defines EX_DETACHED among other things.
	KeyDetachedPostinstall Key = "PODFILE_DETACHED_POSTINSTALL"
	// KeyDetachedServicePostinstall additionally defines EX_DETACHED_SERVICE.
	KeyDetachedServicePostinstall Key = "PODFILE_DETACHED_SERVICE_POSTINSTALL"
	// KeyTestTarget declares the integration test targets.
	KeyTestTarget Key = "PODFILE_TEST_TARGET"
	// KeyUnversionedRNDependency is the unversioned React Native dependency block.
	KeyUnversionedRNDependency Key = "PODFILE_UNVERSIONED_RN_DEPENDENCY"
	// KeyUnversionedPostinstall is the postinstall hook for unversioned dependencies.
	KeyUnversionedPostinstall Key = "PODFILE_UNVERSIONED_POSTINSTALL"
	// KeyVersionedRNDependencies is the aggregate of versioned dependency fragments.
	KeyVersionedRNDependencies Key = "PODFILE_VERSIONED_RN_DEPENDENCIES"
	// KeyVersionedPostinstalls is the aggregate of versioned postinstall fragments.
	KeyVersionedPostinstalls Key = "PODFILE_VERSIONED_POSTINSTALLS"
	// KeyExpoSubspecs lists generated Expo subspecs for versioned dependencies.
	KeyExpoSubspecs Key = "REACT_NATIVE_EXPO_SUBSPECS"
	// KeyReactNativePath is the path of the unversioned React Native dependency.
	KeyReactNativePath Key = "REACT_NATIVE_PATH"
	// KeyTargetName is the main build target, e.g. Exponent.
	KeyTargetName Key = "TARGET_NAME"
	// KeyVersionedRNPath is the path from the Podfile to versioned-react-native.
	KeyVersionedRNPath Key = "VERSIONED_REACT_NATIVE_PATH"
	// KeyUniversalModulesDependencies declares the universal module pods.
	KeyUniversalModulesDependencies Key = "PODFILE_UNVERSIONED_EXPO_MODULES_DEPENDENCIES"
	// KeyUniversalModules is caller-supplied universal module configuration.
	KeyUniversalModules Key = "UNIVERSAL_MODULES"
	// KeyUniversalModulesPath is the install path of universal modules relative to the iOS project.
	KeyUniversalModulesPath Key = "UNIVERSAL_MODULES_PATH"
)

// Embedded podspec template keys.
const (
	// KeyPodspecDependencies is dependencies.json rendered as ss.dependency lines.
	KeyPodspecDependencies Key = "IOS_EXPOKIT_DEPS"
	// KeyClientVersion is the client version stamped into the podspec.
	KeyClientVersion Key = "IOS_EXPONENT_CLIENT_VERSION"
)

// ErrUnknownSubstitutionKey reports a key outside the registry.
var ErrUnknownSubstitutionKey = errors.New(messages.SubstitutionUnknownKey)

// Registry is a closed set of keys for one template kind.
type Registry struct {
	name string
	keys map[Key]struct{}
}

// NewRegistry builds a registry named name (used in errors) holding keys.
func NewRegistry(name string, keys ...Key) Registry {
	set := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return Registry{name: name, keys: set}
}

// PodfileRegistry is the registry for full manifest templates.
var PodfileRegistry = NewRegistry("Podfile",
	KeyExpoKitDependency,
	KeyExpoKitPath,
	KeyExpoKitTag,
	KeyClientDependencies,
	KeyDetachedPostinstall,
	KeyDetachedServicePostinstall,
	KeyTestTarget,
	KeyUnversionedRNDependency,
	KeyUnversionedPostinstall,
	KeyVersionedRNDependencies,
	KeyVersionedPostinstalls,
	KeyExpoSubspecs,
	KeyReactNativePath,
	KeyTargetName,
	KeyVersionedRNPath,
	KeyUniversalModulesDependencies,
	KeyUniversalModules,
	KeyUniversalModulesPath,
)

// PodspecRegistry is the restricted registry for embedded podspec templates.
var PodspecRegistry = NewRegistry("podspec",
	KeyPodspecDependencies,
	KeyClientVersion,
)

// Name returns the registry name.
func (r Registry) Name() string {
	return r.name
}

// Contains reports whether key is registered.
func (r Registry) Contains(key string) bool {
	_, ok := r.keys[Key(key)]
	return ok
}

// Keys returns the registered keys in name order.
func (r Registry) Keys() []Key {
	out := make([]Key, 0, len(r.keys))
	for k := range r.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate fails on the first key of m, in name order, that is not registered.
func (r Registry) Validate(m Map) error {
	for _, key := range m.Keys() {
		if !r.Contains(key) {
			return fmt.Errorf("%w: "+messages.SubstitutionUnknownKeyFmt, ErrUnknownSubstitutionKey, r.name, key)
		}
	}
	return nil
}
