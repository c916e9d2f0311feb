package descriptor

import (
	"os"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// loadEnvFiles loads each existing file into the process environment.
// godotenv.Load never overrides variables that are already set.
func (o *loadOptions) loadEnvFiles() error {
	for _, path := range o.envFiles {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			o.logger.Debug("Env file not found, skipping", logfields.Path(path))
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to load env file").
				Fatal().
				WithContext(errors.ContextSource, path).
				Build()
		}
		o.logger.Debug("Loaded environment variables", logfields.Path(path))
	}
	return nil
}
