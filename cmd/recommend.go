package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/skillmatch/job-recommender/internal/catalog"
	"github.com/skillmatch/job-recommender/internal/logger"
	"github.com/skillmatch/job-recommender/internal/recommend"
)

const (
	PromptDumpRecommendations = "Dump recommendations to file"
	PromptDumpPool            = "Dump ranked job pool to file"
	PromptQuit                = "Quit"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank jobs for a profile once and print the results",
	Run: func(cmd *cobra.Command, _ []string) {
		oneShot(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("profile", "p", "", "path to a YAML user profile (required)")
	recommendCmd.Flags().String("jobs-file", "", "rank postings from a local JSON file instead of the catalog")
	recommendCmd.Flags().IntP("top-n", "n", 10, "number of recommendations to return")
	recommendCmd.Flags().Bool("no-prompt", false, "print results and exit without the interactive menu")
	_ = recommendCmd.MarkFlagRequired("profile")
}

func oneShot(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	profilePath, _ := cmd.Flags().GetString("profile")
	raw, err := loadProfile(profilePath)
	if err != nil {
		zlog.Fatal("loading user profile", zap.Error(err))
	}

	topN, _ := cmd.Flags().GetInt("top-n")
	engine := recommend.New(effectiveRules(config), buildResumeFetcher(config, zlog), zlog)

	tags := engine.ExtractTags(raw)
	searchTags := tags.List()
	if tags.SentinelOnly() {
		searchTags = engine.Rules().FallbackTags
		zlog.Warn("no specific tags extracted, using fallback tags", zap.Strings("tags", searchTags))
	}

	rawJobs, err := loadJobs(ctx, cmd, config, raw, searchTags, zlog)
	if err != nil {
		zlog.Fatal("loading job pool", zap.Error(err))
	}

	jobs := catalog.Normalize(rawJobs, zlog)
	if jobs.Len() == 0 {
		zlog.Warn("no jobs available, ranking the fallback pool")
		jobs = catalog.FallbackJobs()
	}

	recs := engine.Recommend(ctx, raw, jobs.Items, topN, raw.ResumeURLValue())
	if len(recs) == 0 {
		zlog.Info("exiting", zap.String("reason", "no recommendations generated"))
		return
	}

	for i, rec := range recs {
		fmt.Printf("%2d. [%.3f] %s / %s / %s\n    %s\n",
			i+1, rec.Score, rec.Job.Title, rec.Job.CompanyName,
			rec.Job.CandidateRequiredLocation, recommend.Explain(rec),
		)
	}

	if noPrompt, _ := cmd.Flags().GetBool("no-prompt"); noPrompt {
		return
	}

	for {
		prompt := promptui.Select{
			Label: "Results ready",
			Items: []string{PromptDumpRecommendations, PromptDumpPool, PromptQuit},
		}
		_, action, err := prompt.Run()
		if err != nil {
			zlog.Fatal("exiting", zap.Error(err))
		}

		switch action {
		case PromptDumpRecommendations:
			filename, err := dumpRecommendations(recs)
			if err != nil {
				zlog.Fatal("dumping recommendations", zap.Error(err))
			}
			zlog.Info("dumped recommendations", zap.String("filename", filename))
		case PromptDumpPool:
			filename, err := jobs.DumpToTmpFile()
			if err != nil {
				zlog.Fatal("dumping job pool", zap.Error(err))
			}
			zlog.Info("dumped job pool", zap.String("filename", filename))
		case PromptQuit:
			return
		}
	}
}

func dumpRecommendations(recs []recommend.Recommendation) (string, error) {
	file, err := os.CreateTemp("", "recommendations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return "", err
	}

	return file.Name(), nil
}

func loadProfile(path string) (recommend.RawProfile, error) {
	var raw recommend.RawProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return raw, fmt.Errorf("reading profile file: %w", err)
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("parsing profile file: %w", err)
	}

	return raw, nil
}

// loadJobs reads the pool from --jobs-file when given, otherwise queries the
// configured catalog.
func loadJobs(ctx context.Context, cmd *cobra.Command, config *Config, raw recommend.RawProfile, tags []string, zlog *zap.Logger) ([]map[string]any, error) {
	if jobsFile, _ := cmd.Flags().GetString("jobs-file"); jobsFile != "" {
		data, err := os.ReadFile(jobsFile)
		if err != nil {
			return nil, fmt.Errorf("reading jobs file: %w", err)
		}
		var rawJobs []map[string]any
		if err := json.Unmarshal(data, &rawJobs); err != nil {
			return nil, fmt.Errorf("parsing jobs file: %w", err)
		}
		return rawJobs, nil
	}

	client := buildCatalog(ctx, config, zlog)
	if client == nil {
		return nil, fmt.Errorf("no catalog configured and no --jobs-file given")
	}

	return client.FetchByTags(ctx, tags, catalog.FetchParams{
		Location: raw.PreferredLocation,
		JobType:  raw.PreferredJobType,
	}), nil
}
