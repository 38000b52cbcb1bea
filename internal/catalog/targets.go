package catalog

// defaultRecords is the compiled-in target list: conventional loopback
// ports for development, AI, infrastructure, data, and automation
// services. The raw list deliberately contains duplicate ports (several
// products share a conventional port); New keeps the first occurrence.
var defaultRecords = []Record{
	{Port: 3000, Identity: "Next.js / React Dev", Auth: AuthNone, Rebind: RebindLikely, Impact: "SSR abuse, env leak, source code", Category: CategoryWebDev},
	{Port: 3001, Identity: "Create React App", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source maps, HMR hijack", Category: CategoryWebDev},
	{Port: 4200, Identity: "Angular Dev Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source maps, HMR hijack", Category: CategoryWebDev},
	{Port: 5173, Identity: "Vite Dev Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source code exfil, HMR websocket hijack", Category: CategoryWebDev},
	{Port: 5174, Identity: "Vite (alt port)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source code exfil", Category: CategoryWebDev},
	{Port: 8000, Identity: "Python HTTP / Django", Auth: AuthNone, Rebind: RebindLikely, Impact: "File listing, source code, API access", Category: CategoryWebDev},
	{Port: 8080, Identity: "Webpack / Generic Dev", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source maps, dev tools", Category: CategoryWebDev},
	{Port: 8081, Identity: "Dev Server (alt)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Varies", Category: CategoryWebDev},
	{Port: 8888, Identity: "Jupyter Notebook", Auth: AuthToken, Rebind: RebindPartial, Impact: "Kernel RCE, data access", Category: CategoryAI},
	{Port: 8889, Identity: "Jupyter Lab (alt)", Auth: AuthToken, Rebind: RebindPartial, Impact: "Kernel RCE", Category: CategoryAI},
	{Port: 11434, Identity: "Ollama", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Model exec, file read, model poisoning", Category: CategoryAI},
	{Port: 1234, Identity: "Open WebUI", Auth: AuthSession, Rebind: RebindLikely, Impact: "LLM access, conversation history", Category: CategoryAI},
	{Port: 3100, Identity: "LM Studio", Auth: AuthNone, Rebind: RebindLikely, Impact: "Model exec, system prompt leak", Category: CategoryAI},
	{Port: 8188, Identity: "ComfyUI", Auth: AuthNone, Rebind: RebindLikely, Impact: "Workflow exec, file system access", Category: CategoryAI},
	{Port: 7860, Identity: "Gradio / Stable Diffusion", Auth: AuthNone, Rebind: RebindLikely, Impact: "Model exec, file access", Category: CategoryAI},
	{Port: 5678, Identity: "n8n Automation", Auth: AuthSession, Rebind: RebindLikely, Impact: "Workflow exec, credential theft", Category: CategoryAutomation},
	{Port: 1880, Identity: "Node-RED", Auth: AuthNone, Rebind: RebindLikely, Impact: "Flow exec, system commands", Category: CategoryAutomation},
	{Port: 9000, Identity: "Portainer", Auth: AuthSession, Rebind: RebindLikely, Impact: "Container management, host access", Category: CategoryInfra},
	{Port: 2375, Identity: "Docker API (TCP)", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Container create/exec, host filesystem", Category: CategoryInfra},
	{Port: 2376, Identity: "Docker API (TLS)", Auth: AuthCert, Rebind: RebindNo, Impact: "Container management", Category: CategoryInfra},
	{Port: 8001, Identity: "Kubernetes Dashboard", Auth: AuthVaries, Rebind: RebindLikely, Impact: "Cluster admin, pod exec", Category: CategoryInfra},
	{Port: 6443, Identity: "Kubernetes API", Auth: AuthCert, Rebind: RebindPartial, Impact: "Cluster management", Category: CategoryInfra},
	{Port: 10250, Identity: "Kubelet API", Auth: AuthVaries, Rebind: RebindLikely, Impact: "Pod exec, log access", Category: CategoryInfra},
	{Port: 9090, Identity: "Prometheus", Auth: AuthNone, Rebind: RebindLikely, Impact: "Metrics exfil, internal topology", Category: CategoryInfra},
	{Port: 3000, Identity: "Grafana", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Dashboard access, data source creds", Category: CategoryInfra},
	{Port: 8443, Identity: "VS Code Server", Auth: AuthToken, Rebind: RebindPartial, Impact: "Terminal RCE, file access", Category: CategoryDev},
	{Port: 5990, Identity: "GitHub Copilot Agent", Auth: AuthNone, Rebind: RebindUnknown, Impact: "Code context leak", Category: CategoryDev},
	{Port: 6274, Identity: "MCP Inspector", Auth: AuthNone, Rebind: RebindUnknown, Impact: "Tool execution", Category: CategoryDev},
	{Port: 9222, Identity: "Chrome DevTools Protocol", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Browser takeover, session theft", Category: CategoryDev},
	{Port: 5432, Identity: "PostgreSQL", Auth: AuthPassword, Rebind: RebindNo, Impact: "Database access", Category: CategoryData},
	{Port: 3306, Identity: "MySQL", Auth: AuthPassword, Rebind: RebindNo, Impact: "Database access", Category: CategoryData},
	{Port: 6379, Identity: "Redis", Auth: AuthNone, Rebind: RebindLikely, Impact: "Cache dump, session theft, RCE via modules", Category: CategoryData},
	{Port: 27017, Identity: "MongoDB", Auth: AuthNone, Rebind: RebindLikely, Impact: "Database dump", Category: CategoryData},
	{Port: 9200, Identity: "Elasticsearch", Auth: AuthNone, Rebind: RebindLikely, Impact: "Index dump, data exfil", Category: CategoryData},
	{Port: 8983, Identity: "Apache Solr", Auth: AuthNone, Rebind: RebindLikely, Impact: "Search index exfil, RCE via velocity", Category: CategoryData},
	{Port: 4040, Identity: "Spark UI", Auth: AuthNone, Rebind: RebindLikely, Impact: "Job data, environment variables", Category: CategoryData},
	{Port: 15672, Identity: "RabbitMQ Management", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Queue access, message sniffing", Category: CategoryData},
	{Port: 8161, Identity: "ActiveMQ Web Console", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Queue management, message access", Category: CategoryData},
	{Port: 8501, Identity: "Streamlit", Auth: AuthNone, Rebind: RebindLikely, Impact: "Data app access, code exec via widgets", Category: CategoryAI},
	{Port: 6333, Identity: "Qdrant Vector DB", Auth: AuthNone, Rebind: RebindLikely, Impact: "Vector dump, embedding exfil, collection delete", Category: CategoryAI},
	{Port: 19530, Identity: "Milvus Vector DB", Auth: AuthNone, Rebind: RebindLikely, Impact: "Vector data exfil, collection manipulation", Category: CategoryAI},
	{Port: 5000, Identity: "MLflow Tracking", Auth: AuthNone, Rebind: RebindLikely, Impact: "Model registry, experiment data, artifact access", Category: CategoryAI},
	{Port: 6006, Identity: "TensorBoard", Auth: AuthNone, Rebind: RebindLikely, Impact: "Training data leak, model architecture exfil", Category: CategoryAI},
	{Port: 11435, Identity: "Ollama (alt port)", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Model exec, file read", Category: CategoryAI},
	{Port: 4891, Identity: "LocalAI", Auth: AuthNone, Rebind: RebindLikely, Impact: "Model exec, OpenAI-compatible API abuse", Category: CategoryAI},
	{Port: 8080, Identity: "AnythingLLM", Auth: AuthNone, Rebind: RebindLikely, Impact: "LLM access, document store, workspace data", Category: CategoryAI},
	{Port: 3080, Identity: "LibreChat", Auth: AuthSession, Rebind: RebindLikely, Impact: "LLM conversations, API key theft", Category: CategoryAI},
	{Port: 7862, Identity: "Stable Diffusion WebUI (alt)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Image generation, model access", Category: CategoryAI},
	{Port: 4321, Identity: "Astro Dev Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source code exfil, SSR abuse", Category: CategoryWebDev},
	{Port: 1313, Identity: "Hugo Dev Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Content exfil, draft access", Category: CategoryWebDev},
	{Port: 4000, Identity: "Remix / Phoenix", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source code, SSR abuse, live dashboard", Category: CategoryWebDev},
	{Port: 3333, Identity: "AdonisJS / Nuxt", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source code, API access", Category: CategoryWebDev},
	{Port: 24678, Identity: "Vite HMR WebSocket", Auth: AuthNone, Rebind: RebindLikely, Impact: "Hot module injection, source code modification", Category: CategoryWebDev},
	{Port: 5500, Identity: "Live Server (VS Code)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Static file serving, content injection", Category: CategoryWebDev},
	{Port: 35729, Identity: "LiveReload", Auth: AuthNone, Rebind: RebindLikely, Impact: "Page injection via reload protocol", Category: CategoryWebDev},
	{Port: 9292, Identity: "Rack / Sinatra (Ruby)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source code, session data", Category: CategoryWebDev},
	{Port: 6006, Identity: "Storybook", Auth: AuthNone, Rebind: RebindLikely, Impact: "Component source, internal UI exposure", Category: CategoryWebDev},
	{Port: 5555, Identity: "Prisma Studio", Auth: AuthNone, Rebind: RebindLikely, Impact: "Full database GUI, CRUD on all models", Category: CategoryWebDev},
	{Port: 4002, Identity: "Apollo GraphQL Sandbox", Auth: AuthNone, Rebind: RebindLikely, Impact: "Schema introspection, query execution", Category: CategoryWebDev},
	{Port: 8500, Identity: "HashiCorp Consul", Auth: AuthNone, Rebind: RebindLikely, Impact: "Service discovery, KV store access, ACL bypass", Category: CategoryInfra},
	{Port: 8200, Identity: "HashiCorp Vault", Auth: AuthToken, Rebind: RebindPartial, Impact: "Secret exfil, token theft, seal/unseal", Category: CategoryInfra},
	{Port: 2019, Identity: "Caddy Admin API", Auth: AuthNone, Rebind: RebindLikely, Impact: "Config manipulation, reverse proxy hijack", Category: CategoryInfra},
	{Port: 9901, Identity: "Envoy Admin", Auth: AuthNone, Rebind: RebindLikely, Impact: "Config dump, cluster topology, stats", Category: CategoryInfra},
	{Port: 4646, Identity: "HashiCorp Nomad", Auth: AuthNone, Rebind: RebindLikely, Impact: "Job scheduling, exec, secret access", Category: CategoryInfra},
	{Port: 9001, Identity: "MinIO Console", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "S3 bucket access, object read/write/delete", Category: CategoryInfra},
	{Port: 8384, Identity: "Syncthing", Auth: AuthNone, Rebind: RebindLikely, Impact: "File sync manipulation, shared folder access", Category: CategoryInfra},
	{Port: 32400, Identity: "Plex Media Server", Auth: AuthToken, Rebind: RebindPartial, Impact: "Media library, user accounts, network info", Category: CategoryInfra},
	{Port: 8096, Identity: "Jellyfin", Auth: AuthSession, Rebind: RebindLikely, Impact: "Media library, user data, transcoding abuse", Category: CategoryInfra},
	{Port: 5984, Identity: "CouchDB", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Database dump, admin party (no auth default)", Category: CategoryData},
	{Port: 8086, Identity: "InfluxDB", Auth: AuthNone, Rebind: RebindLikely, Impact: "Time-series data exfil, metric manipulation", Category: CategoryData},
	{Port: 7474, Identity: "Neo4j Browser", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Graph traversal, full data dump, Cypher exec", Category: CategoryData},
	{Port: 2379, Identity: "etcd", Auth: AuthNone, Rebind: RebindLikely, Impact: "K8s secrets, cluster state, config dump", Category: CategoryData},
	{Port: 8529, Identity: "ArangoDB", Auth: AuthNone, Rebind: RebindLikely, Impact: "Multi-model DB access, Foxx service exec", Category: CategoryData},
	{Port: 8123, Identity: "ClickHouse HTTP", Auth: AuthNone, Rebind: RebindLikely, Impact: "SQL query exec, data exfil, table drop", Category: CategoryData},
	{Port: 26257, Identity: "CockroachDB SQL", Auth: AuthNone, Rebind: RebindLikely, Impact: "Distributed SQL access, data dump", Category: CategoryData},
	{Port: 28015, Identity: "RethinkDB", Auth: AuthNone, Rebind: RebindLikely, Impact: "ReQL exec, realtime feed hijack", Category: CategoryData},
	{Port: 9042, Identity: "Cassandra CQL", Auth: AuthNone, Rebind: RebindPartial, Impact: "Keyspace dump, CQL injection", Category: CategoryData},
	{Port: 7687, Identity: "Neo4j Bolt", Auth: AuthDefaultCredentials, Rebind: RebindPartial, Impact: "Direct graph DB access", Category: CategoryData},
	{Port: 9411, Identity: "Zipkin", Auth: AuthNone, Rebind: RebindLikely, Impact: "Distributed trace exfil, service topology map", Category: CategoryInfra},
	{Port: 16686, Identity: "Jaeger UI", Auth: AuthNone, Rebind: RebindLikely, Impact: "Trace data exfil, internal service mapping", Category: CategoryInfra},
	{Port: 4317, Identity: "OpenTelemetry Collector", Auth: AuthNone, Rebind: RebindLikely, Impact: "Telemetry injection, trace/metric poisoning", Category: CategoryInfra},
	{Port: 3301, Identity: "SigNoz", Auth: AuthNone, Rebind: RebindLikely, Impact: "APM data exfil, infrastructure topology", Category: CategoryInfra},
	{Port: 5050, Identity: "pgAdmin", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Database management, saved server credentials", Category: CategoryDev},
	{Port: 1337, Identity: "Strapi Admin", Auth: AuthNone, Rebind: RebindLikely, Impact: "CMS admin, content manipulation, user data", Category: CategoryDev},
	{Port: 8055, Identity: "Directus", Auth: AuthToken, Rebind: RebindLikely, Impact: "Headless CMS access, media library, user data", Category: CategoryDev},
	{Port: 54321, Identity: "Supabase Studio", Auth: AuthNone, Rebind: RebindLikely, Impact: "DB GUI, auth users, storage buckets, edge functions", Category: CategoryDev},
	{Port: 8090, Identity: "PocketBase", Auth: AuthNone, Rebind: RebindLikely, Impact: "Admin API, collection CRUD, file storage", Category: CategoryDev},
	{Port: 9229, Identity: "Node.js Inspector", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Debugger attach, arbitrary code execution", Category: CategoryDev},
	{Port: 5037, Identity: "ADB (Android Debug Bridge)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Android device control, app install, shell", Category: CategoryDev},
	{Port: 631, Identity: "CUPS (Print Server)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Printer config, print job access, CVE-2024-47176", Category: CategoryDev},
	{Port: 8123, Identity: "Home Assistant", Auth: AuthToken, Rebind: RebindLikely, Impact: "Smart home control, camera feeds, location data", Category: CategoryAutomation},
	{Port: 2283, Identity: "Immich", Auth: AuthToken, Rebind: RebindLikely, Impact: "Photo library exfil, ML face data, geodata", Category: CategoryAutomation},
	{Port: 9443, Identity: "Portainer (HTTPS)", Auth: AuthSession, Rebind: RebindPartial, Impact: "Container management, host access", Category: CategoryAutomation},
	{Port: 8085, Identity: "Windmill", Auth: AuthToken, Rebind: RebindLikely, Impact: "Script execution, workflow secrets, API keys", Category: CategoryAutomation},
	{Port: 3030, Identity: "Directus / ToolJet", Auth: AuthSession, Rebind: RebindLikely, Impact: "Low-code platform, data source credentials", Category: CategoryAutomation},
	{Port: 8545, Identity: "Ethereum JSON-RPC (Hardhat)", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Private key access, fund transfer, contract deploy", Category: CategoryDev},
	{Port: 7545, Identity: "Ganache", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Test ETH wallets, private keys, transaction replay", Category: CategoryDev},
	{Port: 8546, Identity: "Ethereum WebSocket RPC", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Real-time tx monitoring, mempool sniffing", Category: CategoryDev},
	{Port: 8899, Identity: "Solana Test Validator", Auth: AuthNone, Rebind: RebindLikely, Impact: "Airdrop, transaction signing, program deploy", Category: CategoryDev},
	{Port: 5601, Identity: "Kibana", Auth: AuthNone, Rebind: RebindLikely, Impact: "Log data exfil, saved objects, index patterns", Category: CategoryData},
	{Port: 9600, Identity: "Logstash API", Auth: AuthNone, Rebind: RebindLikely, Impact: "Pipeline info, node stats, plugin list", Category: CategoryData},
	{Port: 4566, Identity: "LocalStack (AWS emulator)", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "S3/SQS/Lambda/DynamoDB - full AWS API access", Category: CategoryInfra},
	{Port: 8086, Identity: "Azure Storage Emulator", Auth: AuthNone, Rebind: RebindLikely, Impact: "Blob/Queue/Table storage access", Category: CategoryInfra},
	{Port: 8085, Identity: "GCP Pub/Sub Emulator", Auth: AuthNone, Rebind: RebindLikely, Impact: "Message queue access, topic manipulation", Category: CategoryInfra},
	{Port: 8025, Identity: "Mailpit / MailHog", Auth: AuthNone, Rebind: RebindLikely, Impact: "Captured emails exfil, password reset tokens", Category: CategoryDev},
	{Port: 1025, Identity: "MailHog SMTP", Auth: AuthNone, Rebind: RebindLikely, Impact: "SMTP relay, email injection", Category: CategoryDev},
	{Port: 1080, Identity: "MailCatcher", Auth: AuthNone, Rebind: RebindLikely, Impact: "Email capture, credential harvesting", Category: CategoryDev},
	{Port: 6060, Identity: "Go pprof", Auth: AuthNone, Rebind: RebindLikely, Impact: "Heap dump, goroutine leak, CPU profile exfil", Category: CategoryDev},
	{Port: 4173, Identity: "Vite Preview", Auth: AuthNone, Rebind: RebindLikely, Impact: "Production build preview, asset exfil", Category: CategoryWebDev},
	{Port: 7681, Identity: "ttyd Web Terminal", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Full shell access via browser, instant RCE", Category: CategoryDev},
	{Port: 6080, Identity: "noVNC", Auth: AuthNone, Rebind: RebindLikely, Impact: "Remote desktop access, screen capture", Category: CategoryDev},
	{Port: 5900, Identity: "VNC Server", Auth: AuthPassword, Rebind: RebindPartial, Impact: "Remote desktop, keylogging, screen capture", Category: CategoryDev},
	{Port: 19006, Identity: "Expo DevTools", Auth: AuthNone, Rebind: RebindLikely, Impact: "React Native source, device control, hot reload", Category: CategoryDev},
	{Port: 19000, Identity: "Expo Metro Bundler", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source code, bundle manipulation", Category: CategoryDev},
	{Port: 8081, Identity: "React Native Metro", Auth: AuthNone, Rebind: RebindLikely, Impact: "Source maps, hot module injection", Category: CategoryWebDev},
	{Port: 50070, Identity: "HDFS NameNode", Auth: AuthNone, Rebind: RebindLikely, Impact: "Distributed filesystem browse, data exfil", Category: CategoryData},
	{Port: 8088, Identity: "YARN ResourceManager", Auth: AuthNone, Rebind: RebindLikely, Impact: "Job submission, container exec, cluster info", Category: CategoryData},
	{Port: 9092, Identity: "Kafka Broker", Auth: AuthNone, Rebind: RebindPartial, Impact: "Topic listing, message consume, producer inject", Category: CategoryData},
	{Port: 2181, Identity: "ZooKeeper", Auth: AuthNone, Rebind: RebindPartial, Impact: "Cluster config, ACL data, leader election abuse", Category: CategoryData},
	{Port: 11211, Identity: "Memcached", Auth: AuthNone, Rebind: RebindLikely, Impact: "Cache dump, session data, DDoS amplification", Category: CategoryData},
	{Port: 4444, Identity: "Selenium Grid Hub", Auth: AuthNone, Rebind: RebindLikely, Impact: "Browser session hijack, arbitrary URL navigation", Category: CategoryDev},
	{Port: 9515, Identity: "ChromeDriver", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Browser automation, session theft via WebDriver", Category: CategoryDev},
	{Port: 4723, Identity: "Appium Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Mobile device control, app manipulation", Category: CategoryDev},
	{Port: 8082, Identity: "Traefik Dashboard", Auth: AuthNone, Rebind: RebindLikely, Impact: "Route config exfil, middleware manipulation", Category: CategoryInfra},
	{Port: 8444, Identity: "Kong Admin API", Auth: AuthNone, Rebind: RebindLikely, Impact: "API gateway config, upstream manipulation", Category: CategoryInfra},
	{Port: 15000, Identity: "Istio Envoy Admin", Auth: AuthNone, Rebind: RebindLikely, Impact: "Service mesh config, cluster topology dump", Category: CategoryInfra},
	{Port: 20000, Identity: "Webmin", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "System administration, root access", Category: CategoryInfra},
	{Port: 3567, Identity: "SuperTokens Core", Auth: AuthNone, Rebind: RebindLikely, Impact: "Auth bypass, user session manipulation", Category: CategoryInfra},
	{Port: 8080, Identity: "Keycloak", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Identity provider admin, token minting", Category: CategoryInfra},
	{Port: 9763, Identity: "WSO2 Identity Server", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "SAML/OAuth admin, identity federation abuse", Category: CategoryInfra},
	{Port: 8787, Identity: "RStudio Server", Auth: AuthPassword, Rebind: RebindPartial, Impact: "R console RCE, data access, package install", Category: CategoryAI},
	{Port: 3838, Identity: "Shiny Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "R app access, data visualization exfil", Category: CategoryAI},
	{Port: 8050, Identity: "Plotly Dash", Auth: AuthNone, Rebind: RebindLikely, Impact: "Dashboard data exfil, callback manipulation", Category: CategoryAI},
	{Port: 8765, Identity: "text-generation-webui API", Auth: AuthNone, Rebind: RebindLikely, Impact: "LLM inference, model switching, chat history", Category: CategoryAI},
	{Port: 3500, Identity: "Dapr HTTP API", Auth: AuthNone, Rebind: RebindLikely, Impact: "Service invocation, state store, pub/sub access", Category: CategoryInfra},
	{Port: 8778, Identity: "Jolokia (JMX over HTTP)", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "JMX MBean access, heap dump, thread manipulation", Category: CategoryInfra},
	{Port: 9100, Identity: "Prometheus Node Exporter", Auth: AuthNone, Rebind: RebindLikely, Impact: "Host metrics, filesystem info, network stats", Category: CategoryInfra},
	{Port: 8428, Identity: "VictoriaMetrics", Auth: AuthNone, Rebind: RebindLikely, Impact: "Metrics DB access, data injection/exfil", Category: CategoryInfra},
	{Port: 8080, Identity: "FileBrowser", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Full filesystem browse, file upload/download", Category: CategoryInfra},
	{Port: 5001, Identity: "IPFS API", Auth: AuthNone, Rebind: RebindLikely, Impact: "Pin/unpin content, file add, swarm peers", Category: CategoryInfra},
	{Port: 4001, Identity: "IPFS Swarm", Auth: AuthNone, Rebind: RebindPartial, Impact: "P2P network access, content routing", Category: CategoryInfra},
	{Port: 9090, Identity: "Godot Remote Debug", Auth: AuthNone, Rebind: RebindLikely, Impact: "Scene tree access, variable manipulation", Category: CategoryDev},
	{Port: 3002, Identity: "Unreal Pixel Streaming", Auth: AuthNone, Rebind: RebindLikely, Impact: "Render stream hijack, input injection", Category: CategoryDev},
	{Port: 1433, Identity: "Microsoft SQL Server", Auth: AuthPassword, Rebind: RebindNo, Impact: "Database access, xp_cmdshell RCE", Category: CategoryData},
	{Port: 33060, Identity: "MySQL X Protocol", Auth: AuthPassword, Rebind: RebindNo, Impact: "Document store access, async queries", Category: CategoryData},
	{Port: 6380, Identity: "Redis (TLS)", Auth: AuthNone, Rebind: RebindPartial, Impact: "Encrypted cache access", Category: CategoryData},
	{Port: 8529, Identity: "ArangoDB Web UI", Auth: AuthNone, Rebind: RebindLikely, Impact: "AQL queries, graph traversal, user management", Category: CategoryData},
	{Port: 5672, Identity: "RabbitMQ AMQP", Auth: AuthDefaultCredentials, Rebind: RebindPartial, Impact: "Queue consume/publish, vhost access, user creds", Category: CategoryData},
	{Port: 4222, Identity: "NATS", Auth: AuthNone, Rebind: RebindLikely, Impact: "Pub/sub hijack, request/reply interception", Category: CategoryData},
	{Port: 8222, Identity: "NATS Monitoring", Auth: AuthNone, Rebind: RebindLikely, Impact: "Connection info, subscription list, route map", Category: CategoryData},
	{Port: 4151, Identity: "NSQ nsqd HTTP", Auth: AuthNone, Rebind: RebindLikely, Impact: "Topic/channel manipulation, message publish", Category: CategoryData},
	{Port: 4171, Identity: "NSQ nsqadmin", Auth: AuthNone, Rebind: RebindLikely, Impact: "Cluster admin, topic delete, channel management", Category: CategoryData},
	{Port: 61616, Identity: "ActiveMQ OpenWire", Auth: AuthDefaultCredentials, Rebind: RebindPartial, Impact: "Message broker access, queue manipulation", Category: CategoryData},
	{Port: 11300, Identity: "Beanstalkd", Auth: AuthNone, Rebind: RebindLikely, Impact: "Job queue access, job steal/delete/inject", Category: CategoryData},
	{Port: 9093, Identity: "Alertmanager", Auth: AuthNone, Rebind: RebindLikely, Impact: "Alert silencing, notification routing, alert exfil", Category: CategoryInfra},
	{Port: 9115, Identity: "Blackbox Exporter", Auth: AuthNone, Rebind: RebindLikely, Impact: "SSRF via probe targets, internal endpoint map", Category: CategoryInfra},
	{Port: 19999, Identity: "Netdata", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Real-time system metrics, process list, disk info", Category: CategoryInfra},
	{Port: 8686, Identity: "Vector (Datadog)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Log pipeline config, health/metrics exfil", Category: CategoryInfra},
	{Port: 10255, Identity: "Kubelet Read-only", Auth: AuthNone, Rebind: RebindLikely, Impact: "Pod list, spec dump, running containers", Category: CategoryInfra},
	{Port: 10248, Identity: "Kubelet Healthz", Auth: AuthNone, Rebind: RebindLikely, Impact: "Node health, component status", Category: CategoryInfra},
	{Port: 2380, Identity: "etcd Peer", Auth: AuthNone, Rebind: RebindLikely, Impact: "Cluster membership, leader election disruption", Category: CategoryInfra},
	{Port: 3128, Identity: "Squid Proxy", Auth: AuthNone, Rebind: RebindLikely, Impact: "Open proxy, SSRF, internal network pivot", Category: CategoryInfra},
	{Port: 9050, Identity: "Tor SOCKS", Auth: AuthNone, Rebind: RebindPartial, Impact: "Anonymous traffic relay, proxy abuse", Category: CategoryInfra},
	{Port: 2222, Identity: "SSH Alt / Gitea SSH", Auth: AuthPassword, Rebind: RebindNo, Impact: "Shell access, Git repo access", Category: CategoryDev},
	{Port: 9418, Identity: "Git Daemon", Auth: AuthNone, Rebind: RebindLikely, Impact: "Anonymous Git clone, source code exfil", Category: CategoryDev},
	{Port: 8265, Identity: "Ray Dashboard", Auth: AuthNone, Rebind: RebindLikely, Impact: "Distributed compute cluster, job submission, actor list", Category: CategoryAI},
	{Port: 6334, Identity: "Qdrant gRPC", Auth: AuthNone, Rebind: RebindLikely, Impact: "Vector DB gRPC, high-speed embedding exfil", Category: CategoryAI},
	{Port: 8084, Identity: "Weaviate", Auth: AuthNone, Rebind: RebindLikely, Impact: "Vector search, schema manipulation, object CRUD", Category: CategoryAI},
	{Port: 5002, Identity: "Flask / TTS Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "API access, model inference, file serving", Category: CategoryAI},
	{Port: 7861, Identity: "Gradio (alt port)", Auth: AuthNone, Rebind: RebindLikely, Impact: "ML app access, file upload, model inference", Category: CategoryAI},
	{Port: 8332, Identity: "Bitcoin Core RPC", Auth: AuthPassword, Rebind: RebindPartial, Impact: "Wallet access, transaction signing, fund transfer", Category: CategoryDev},
	{Port: 18443, Identity: "Bitcoin Regtest RPC", Auth: AuthPassword, Rebind: RebindPartial, Impact: "Test wallet control, block generation", Category: CategoryDev},
	{Port: 5052, Identity: "Ethereum Beacon API", Auth: AuthNone, Rebind: RebindLikely, Impact: "Validator info, beacon state, attestation data", Category: CategoryDev},
	{Port: 8551, Identity: "Geth Engine API", Auth: AuthToken, Rebind: RebindPartial, Impact: "Execution layer control, payload building", Category: CategoryDev},
	{Port: 30303, Identity: "Geth P2P", Auth: AuthNone, Rebind: RebindPartial, Impact: "Peer discovery, network topology mapping", Category: CategoryDev},
	{Port: 2368, Identity: "Ghost CMS", Auth: AuthSession, Rebind: RebindLikely, Impact: "Blog admin, content manipulation, user data", Category: CategoryWebDev},
	{Port: 8069, Identity: "Odoo ERP", Auth: AuthSession, Rebind: RebindLikely, Impact: "Business data, invoices, customer records", Category: CategoryWebDev},
	{Port: 3010, Identity: "Gitea Web UI", Auth: AuthSession, Rebind: RebindLikely, Impact: "Git repos, CI secrets, user management", Category: CategoryDev},
	{Port: 8929, Identity: "GitLab Dev Kit", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Git repos, CI/CD pipelines, secrets, tokens", Category: CategoryDev},
	{Port: 1883, Identity: "MQTT (Mosquitto)", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "IoT message intercept, topic subscribe, publish", Category: CategoryAutomation},
	{Port: 8883, Identity: "MQTT TLS", Auth: AuthCert, Rebind: RebindPartial, Impact: "Encrypted IoT messaging, device control", Category: CategoryAutomation},
	{Port: 4840, Identity: "OPC UA Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Industrial control read/write, PLC access", Category: CategoryAutomation},
	{Port: 502, Identity: "Modbus TCP", Auth: AuthNone, Rebind: RebindLikely, Impact: "Industrial device control, register read/write", Category: CategoryAutomation},
	{Port: 8554, Identity: "MediaMTX (RTSP)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Camera stream interception, stream injection", Category: CategoryInfra},
	{Port: 1935, Identity: "RTMP Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Live stream hijack, stream key exfil", Category: CategoryInfra},
	{Port: 25565, Identity: "Minecraft Server", Auth: AuthNone, Rebind: RebindPartial, Impact: "Server info, player data, RCON if enabled", Category: CategoryDev},
	{Port: 6463, Identity: "Discord RPC", Auth: AuthNone, Rebind: RebindLikely, Impact: "Rich presence manipulation, user info leak", Category: CategoryDev},
	{Port: 17500, Identity: "Dropbox LAN Sync", Auth: AuthNone, Rebind: RebindLikely, Impact: "File sync metadata, peer discovery", Category: CategoryDev},
	{Port: 57621, Identity: "Spotify Connect", Auth: AuthNone, Rebind: RebindPartial, Impact: "Playback control, device discovery", Category: CategoryDev},
	{Port: 47990, Identity: "Sunshine (Game Stream)", Auth: AuthPassword, Rebind: RebindLikely, Impact: "Remote desktop stream, input injection", Category: CategoryDev},
	{Port: 5800, Identity: "VNC HTTP Viewer", Auth: AuthNone, Rebind: RebindLikely, Impact: "Web-based remote desktop, no auth by default", Category: CategoryDev},
	{Port: 6000, Identity: "X11 Display Server", Auth: AuthNone, Rebind: RebindPartial, Impact: "Screen capture, keyboard sniffing, window inject", Category: CategoryDev},
	{Port: 8834, Identity: "Nessus Scanner", Auth: AuthPassword, Rebind: RebindLikely, Impact: "Vuln scan results, scan configs, network topology", Category: CategoryInfra},
	{Port: 9390, Identity: "OpenVAS / Greenbone", Auth: AuthPassword, Rebind: RebindLikely, Impact: "Vulnerability reports, scan targets, credentials", Category: CategoryInfra},
	{Port: 7199, Identity: "Cassandra JMX", Auth: AuthNone, Rebind: RebindPartial, Impact: "Cluster management, compaction, repair trigger", Category: CategoryData},
	{Port: 9998, Identity: "Azkaban Web Server", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Workflow execution, Hadoop job scheduling", Category: CategoryData},
	{Port: 5601, Identity: "OpenSearch Dashboards", Auth: AuthNone, Rebind: RebindLikely, Impact: "Log data exfil, index pattern access", Category: CategoryData},
	{Port: 14268, Identity: "Jaeger Collector HTTP", Auth: AuthNone, Rebind: RebindLikely, Impact: "Trace injection, span data manipulation", Category: CategoryInfra},
	{Port: 4318, Identity: "OpenTelemetry HTTP", Auth: AuthNone, Rebind: RebindLikely, Impact: "Telemetry injection, trace/metric/log poisoning", Category: CategoryInfra},
	{Port: 10000, Identity: "Webmin Alt / JupyterHub", Auth: AuthPassword, Rebind: RebindLikely, Impact: "System admin or multi-user notebook server", Category: CategoryInfra},
	{Port: 7070, Identity: "Spark REST Submission", Auth: AuthNone, Rebind: RebindLikely, Impact: "Job submission, driver creation, app kill", Category: CategoryData},
	{Port: 18080, Identity: "Spark History Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Job history, environment vars, executor logs", Category: CategoryData},
	{Port: 10002, Identity: "Hive Server2 Web UI", Auth: AuthNone, Rebind: RebindLikely, Impact: "Query history, session info, database metadata", Category: CategoryData},
	{Port: 16010, Identity: "HBase Master Web UI", Auth: AuthNone, Rebind: RebindLikely, Impact: "Table listing, region info, cluster status", Category: CategoryData},
	{Port: 8042, Identity: "YARN NodeManager", Auth: AuthNone, Rebind: RebindLikely, Impact: "Container logs, application info, node resources", Category: CategoryData},
	{Port: 19888, Identity: "MapReduce History", Auth: AuthNone, Rebind: RebindLikely, Impact: "Job counters, task attempts, config dump", Category: CategoryData},
	{Port: 63342, Identity: "JetBrains Built-in Server", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "ANY open project file served via HTTP, full source code exfil", Category: CategoryDev},
	{Port: 63343, Identity: "JetBrains Server (fallback)", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Alt port, same project file access via REST API", Category: CategoryDev},
	{Port: 27123, Identity: "Obsidian Local REST API", Auth: AuthToken, Rebind: RebindLikely, Impact: "Full vault read/write: notes, journals, passwords, private thoughts", Category: CategoryDev},
	{Port: 18412, Identity: "Figma Font Helper", Auth: AuthNone, Rebind: RebindLikely, Impact: "Local font enumeration, system font fingerprinting", Category: CategoryDev},
	{Port: 24800, Identity: "Barrier / Synergy KVM", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Keyboard injection, mouse control, clipboard theft = keylogger", Category: CategoryDev},
	{Port: 1716, Identity: "KDE Connect", Auth: AuthCert, Rebind: RebindPartial, Impact: "SMS read, clipboard sync, file transfer, phone locate/ring", Category: CategoryAutomation},
	{Port: 6600, Identity: "MPD (Music Player Daemon)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Playlist control, media library listing, filesystem path leak", Category: CategoryDev},
	{Port: 7000, Identity: "AirPlay Receiver", Auth: AuthNone, Rebind: RebindPartial, Impact: "Screen mirroring injection, media playback hijack", Category: CategoryAutomation},
	{Port: 548, Identity: "AFP (Apple Filing Protocol)", Auth: AuthPassword, Rebind: RebindNo, Impact: "macOS file shares, Time Machine backup access", Category: CategoryInfra},
	{Port: 3283, Identity: "Apple Remote Desktop", Auth: AuthPassword, Rebind: RebindPartial, Impact: "Screen observation, remote control, file copy, shell exec", Category: CategoryDev},
	{Port: 1400, Identity: "Sonos HTTP API", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Speaker control, household topology, play arbitrary audio", Category: CategoryAutomation},
	{Port: 8008, Identity: "Google Chromecast", Auth: AuthNone, Rebind: RebindPartial, Impact: "Cast control, device info, app launch, reboot device", Category: CategoryAutomation},
	{Port: 6052, Identity: "ESPHome Dashboard", Auth: AuthNone, Rebind: RebindLikely, Impact: "OTA firmware flash, WiFi credentials, device takeover", Category: CategoryAutomation},
	{Port: 8581, Identity: "Homebridge", Auth: AuthPassword, Rebind: RebindLikely, Impact: "HomeKit device control, plugin config, smart home admin", Category: CategoryAutomation},
	{Port: 4873, Identity: "Verdaccio (npm registry)", Auth: AuthNone, Rebind: RebindLikely, Impact: "Private npm packages exfil, publish malicious updates", Category: CategoryDev},
	{Port: 445, Identity: "SMB (Samba)", Auth: AuthPassword, Rebind: RebindNo, Impact: "File share enum, printer shares, lateral movement", Category: CategoryInfra},
	{Port: 2049, Identity: "NFS", Auth: AuthNone, Rebind: RebindPartial, Impact: "Network filesystem mount, full file access if misconfigured", Category: CategoryInfra},
	{Port: 22000, Identity: "Syncthing File Transfer", Auth: AuthNone, Rebind: RebindPartial, Impact: "File sync data channel, shared folder content access", Category: CategoryInfra},
	{Port: 9091, Identity: "Transmission Web UI", Auth: AuthNone, Rebind: RebindConfirmed, Impact: "Torrent list exfil, download paths, add malicious torrents", Category: CategoryDev},
	{Port: 8112, Identity: "Deluge Web UI", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "Torrent management, download dir, ratio data", Category: CategoryDev},
	{Port: 51413, Identity: "Transmission BitTorrent", Auth: AuthNone, Rebind: RebindPartial, Impact: "BitTorrent protocol, peer info, transfer data", Category: CategoryDev},
	{Port: 9944, Identity: "Polkadot/Substrate WS RPC", Auth: AuthNone, Rebind: RebindLikely, Impact: "Chain state query, account balance, tx submission", Category: CategoryDev},
	{Port: 9933, Identity: "Substrate HTTP RPC", Auth: AuthNone, Rebind: RebindLikely, Impact: "Blockchain node control, key management, author rotation", Category: CategoryDev},
	{Port: 26657, Identity: "Tendermint RPC", Auth: AuthNone, Rebind: RebindLikely, Impact: "Cosmos chain state, tx broadcast, validator info", Category: CategoryDev},
	{Port: 1317, Identity: "Cosmos REST API", Auth: AuthNone, Rebind: RebindLikely, Impact: "Chain queries, account data, governance proposals", Category: CategoryDev},
	{Port: 9545, Identity: "Truffle Dashboard", Auth: AuthNone, Rebind: RebindLikely, Impact: "Transaction signing requests, contract deployment approval", Category: CategoryDev},
	{Port: 8233, Identity: "Temporal Web UI", Auth: AuthNone, Rebind: RebindLikely, Impact: "Workflow execution data, namespace admin, signal inject", Category: CategoryInfra},
	{Port: 2746, Identity: "Argo Workflows UI", Auth: AuthNone, Rebind: RebindLikely, Impact: "K8s workflow execution, artifact download, log access", Category: CategoryInfra},
	{Port: 8006, Identity: "Proxmox VE", Auth: AuthPassword, Rebind: RebindLikely, Impact: "VM/container management, host shell, storage, backups", Category: CategoryInfra},
	{Port: 53, Identity: "DNS Resolver (TCP)", Auth: AuthNone, Rebind: RebindNo, Impact: "DNS cache queries, zone transfer, internal hostname enum", Category: CategoryInfra},
	{Port: 5380, Identity: "Technitium DNS Admin", Auth: AuthDefaultCredentials, Rebind: RebindLikely, Impact: "DNS zone manipulation, query logs, cache poisoning", Category: CategoryInfra},
	{Port: 9153, Identity: "CoreDNS Metrics", Auth: AuthNone, Rebind: RebindLikely, Impact: "DNS query stats, zone info, internal resolution patterns", Category: CategoryInfra},
	{Port: 389, Identity: "LDAP", Auth: AuthPassword, Rebind: RebindNo, Impact: "User enumeration, group membership, org structure", Category: CategoryInfra},
	{Port: 636, Identity: "LDAPS", Auth: AuthPassword, Rebind: RebindNo, Impact: "Encrypted directory queries, same LDAP impact", Category: CategoryInfra},
	{Port: 64738, Identity: "Mumble Voice Server", Auth: AuthNone, Rebind: RebindPartial, Impact: "Voice chat eavesdrop, user list, channel mapping", Category: CategoryDev},
	{Port: 3478, Identity: "STUN/TURN (WebRTC)", Auth: AuthNone, Rebind: RebindPartial, Impact: "NAT traversal abuse, internal IP disclosure, relay hijack", Category: CategoryInfra},
	{Port: 5006, Identity: "Bokeh / Panel Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "Interactive data viz, underlying dataset exfiltration", Category: CategoryAI},
	{Port: 9999, Identity: "vLLM API Server", Auth: AuthNone, Rebind: RebindLikely, Impact: "LLM inference, model list, completion abuse, prompt injection", Category: CategoryAI},
	{Port: 10010, Identity: "containerd CRI gRPC", Auth: AuthNone, Rebind: RebindLikely, Impact: "Container runtime control, image pull, exec in containers", Category: CategoryInfra},
	{Port: 9181, Identity: "ZooKeeper AdminServer", Auth: AuthNone, Rebind: RebindLikely, Impact: "Four-letter commands, stat/dump/conf, snapshot trigger", Category: CategoryData},}
